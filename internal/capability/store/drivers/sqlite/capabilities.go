package sqlite

import (
	"context"
	"encoding/json"

	"github.com/rovillalobos-slalom/capabilities/internal/capability/domain"
	"github.com/rovillalobos-slalom/capabilities/internal/capability/store"
)

type capabilitiesRepo struct {
	q querier
}

func (r *capabilitiesRepo) ListCapabilities(ctx context.Context) ([]domain.Capability, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, name, description, practice_area, skill_levels,
		       industry_verticals, certifications, capacity, created_at, updated_at
		FROM capabilities
		ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var caps []domain.Capability
	for rows.Next() {
		c, err := scanCapability(rows)
		if err != nil {
			return nil, err
		}
		caps = append(caps, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range caps {
		consultants, err := r.rosterFor(ctx, caps[i].ID)
		if err != nil {
			return nil, err
		}
		caps[i].Consultants = consultants
	}
	return caps, nil
}

func (r *capabilitiesRepo) GetCapabilityByName(ctx context.Context, name string) (domain.Capability, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT id, name, description, practice_area, skill_levels,
		       industry_verticals, certifications, capacity, created_at, updated_at
		FROM capabilities
		WHERE name = ?`, name)

	c, err := scanCapability(row)
	if err != nil {
		return domain.Capability{}, mapNotFound(err)
	}

	c.Consultants, err = r.rosterFor(ctx, c.ID)
	if err != nil {
		return domain.Capability{}, err
	}
	return c, nil
}

func (r *capabilitiesRepo) CreateCapability(ctx context.Context, c domain.Capability) error {
	levels, err := json.Marshal(emptyIfNil(c.SkillLevels))
	if err != nil {
		return err
	}
	verticals, err := json.Marshal(emptyIfNil(c.IndustryVerticals))
	if err != nil {
		return err
	}
	certs, err := json.Marshal(emptyIfNil(c.Certifications))
	if err != nil {
		return err
	}

	now := nowString()
	_, err = r.q.ExecContext(ctx, `
		INSERT INTO capabilities (id, name, description, practice_area, skill_levels,
			industry_verticals, certifications, capacity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Description, c.PracticeArea,
		string(levels), string(verticals), string(certs), c.Capacity, now, now)
	if err != nil && isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	if err != nil {
		return err
	}

	for _, email := range c.Consultants {
		if err := r.AddConsultant(ctx, c.ID, email); err != nil {
			return err
		}
	}
	return nil
}

func (r *capabilitiesRepo) AddConsultant(ctx context.Context, capabilityID string, email string) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO capability_consultants (capability_id, email, registered_at)
		VALUES (?, ?, ?)`, capabilityID, email, nowString())
	if err != nil && isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *capabilitiesRepo) RemoveConsultant(ctx context.Context, capabilityID string, email string) error {
	res, err := r.q.ExecContext(ctx, `
		DELETE FROM capability_consultants
		WHERE capability_id = ? AND email = ?`, capabilityID, email)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *capabilitiesRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM capabilities`).Scan(&count)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// rosterFor returns the roster in registration order. The rowid preserves
// insertion order since the table is never vacuumed mid-request.
func (r *capabilitiesRepo) rosterFor(ctx context.Context, capabilityID string) ([]string, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT email
		FROM capability_consultants
		WHERE capability_id = ?
		ORDER BY rowid`, capabilityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	consultants := []string{}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		consultants = append(consultants, email)
	}
	return consultants, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCapability(row rowScanner) (domain.Capability, error) {
	var c domain.Capability
	var levels, verticals, certs, createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.PracticeArea,
		&levels, &verticals, &certs, &c.Capacity, &createdAt, &updatedAt)
	if err != nil {
		return domain.Capability{}, err
	}
	if err := json.Unmarshal([]byte(levels), &c.SkillLevels); err != nil {
		return domain.Capability{}, err
	}
	if err := json.Unmarshal([]byte(verticals), &c.IndustryVerticals); err != nil {
		return domain.Capability{}, err
	}
	if err := json.Unmarshal([]byte(certs), &c.Certifications); err != nil {
		return domain.Capability{}, err
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return c, nil
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
