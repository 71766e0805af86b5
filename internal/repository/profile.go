package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/helper_network/internal/models"
	"github.com/shenikar/helper_network/internal/service"
)

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) service.ProfileRepository {
	return &ProfileRepository{db: db}
}

// SaveMedicalInfo вставляет или обновляет медицинский профиль пользователя
func (r *ProfileRepository) SaveMedicalInfo(ctx context.Context, info *models.MedicalInfo) error {
	query := `
		INSERT INTO medical_info (user_id, blood_type, allergies, medication, conditions, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			blood_type = EXCLUDED.blood_type,
			allergies = EXCLUDED.allergies,
			medication = EXCLUDED.medication,
			conditions = EXCLUDED.conditions,
			notes = EXCLUDED.notes,
			updated_at = NOW()
		RETURNING updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		info.UserID,
		info.BloodType,
		info.Allergies,
		info.Medication,
		info.Conditions,
		info.Notes,
	).Scan(&info.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save medical info: %w", err)
	}
	return nil
}

// GetMedicalInfo возвращает медицинский профиль пользователя.
// Отсутствие профиля - не ошибка: возвращается (nil, nil).
func (r *ProfileRepository) GetMedicalInfo(ctx context.Context, userID string) (*models.MedicalInfo, error) {
	info := &models.MedicalInfo{}
	query := `
		SELECT user_id, blood_type, allergies, medication, conditions, notes, updated_at
		FROM medical_info
		WHERE user_id = $1;
	`
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&info.UserID,
		&info.BloodType,
		&info.Allergies,
		&info.Medication,
		&info.Conditions,
		&info.Notes,
		&info.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get medical info: %w", err)
	}
	return info, nil
}

// SaveContact создает контакт для экстренной связи
func (r *ProfileRepository) SaveContact(ctx context.Context, contact *models.EmergencyContact) error {
	query := `
		INSERT INTO emergency_contacts (user_id, name, phone, relation, priority)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		contact.UserID,
		contact.Name,
		contact.Phone,
		contact.Relation,
		contact.Priority,
	).Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save contact: %w", err)
	}
	return nil
}

// ListContacts возвращает контакты пользователя по убыванию приоритета
func (r *ProfileRepository) ListContacts(ctx context.Context, userID string) ([]*models.EmergencyContact, error) {
	query := `
		SELECT id, user_id, name, phone, relation, priority, created_at
		FROM emergency_contacts
		WHERE user_id = $1
		ORDER BY priority DESC, created_at;
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.EmergencyContact, 0)
	for rows.Next() {
		contact := &models.EmergencyContact{}
		err := rows.Scan(
			&contact.ID,
			&contact.UserID,
			&contact.Name,
			&contact.Phone,
			&contact.Relation,
			&contact.Priority,
			&contact.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return contacts, nil
}

// DeleteContact удаляет контакт пользователя
func (r *ProfileRepository) DeleteContact(ctx context.Context, userID string, id int64) error {
	query := `DELETE FROM emergency_contacts WHERE id = $1 AND user_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact with id %d not found", id)
	}
	return nil
}
