package instructionrepo

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/poolkeeper/internal/domain"
	"github.com/GlebRadaev/poolkeeper/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Save(ctx context.Context, record *domain.InstructionRecord) (*domain.InstructionRecord, error) {
	query := `
		INSERT INTO instructions (sender, action, contract, kind, owner, recipient, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8)
		RETURNING id
	`
	in := record.Instruction
	err := r.db.QueryRow(ctx, query,
		record.Sender, record.Action, in.Contract, string(in.Kind), in.Owner, in.Recipient, in.Amount.String(), record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		zap.L().Error("can't save instruction", zap.Error(err))
		return nil, err
	}
	return record, nil
}

func (r *Repository) ListBySender(ctx context.Context, sender string) ([]domain.InstructionRecord, error) {
	query := `
        SELECT id, sender, action, contract, kind, owner, recipient, amount::text, created_at
        FROM instructions
        WHERE sender = $1
        ORDER BY created_at DESC, id DESC
    `
	rows, err := r.db.Query(ctx, query, sender)
	if err != nil {
		zap.L().Error("failed to fetch instructions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.InstructionRecord
	for rows.Next() {
		var rec domain.InstructionRecord
		var kind, amount string
		err := rows.Scan(&rec.ID, &rec.Sender, &rec.Action, &rec.Instruction.Contract, &kind,
			&rec.Instruction.Owner, &rec.Instruction.Recipient, &amount, &rec.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan instruction row", zap.Error(err))
			return nil, err
		}
		rec.Instruction.Kind = domain.InstructionKind(kind)
		if rec.Instruction.Amount, err = domain.ParseAmount(amount); err != nil {
			return nil, fmt.Errorf("%w: instruction %d amount: %v", domain.ErrCorruptedState, rec.ID, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
