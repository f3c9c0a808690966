package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

const incidentCacheTTL = 5 * time.Minute

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const incidentColumns = `
	id,
	tenant_id,
	originator_id,
	category,
	status,
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	accuracy_meters,
	heading_deg,
	speed_mps,
	fix_captured_at,
	fix_source,
	assigned_subject_id,
	assigned_subject_kind,
	assigned_at,
	created_at,
	resolved_at
`

// Create создает новую запись об инциденте в бд. Координата опциональна:
// инцидент без позиции сохраняется с location = NULL.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			id, tenant_id, originator_id, category, status,
			location, accuracy_meters, heading_deg, speed_mps, fix_captured_at, fix_source,
			created_at
		)
		VALUES (
			$1, $2, $3, $4, $5,
			CASE WHEN $6::float8 IS NULL THEN NULL
			     ELSE ST_SetSRID(ST_MakePoint($7, $6), 4326)::geography END,
			$8, $9, $10, $11, $12,
			$13
		);
	`
	var lat, lon, accuracy, heading, speed *float64
	var capturedAt *time.Time
	var source *string
	if fix := incident.Location; fix != nil {
		lat = &fix.Latitude
		lon = &fix.Longitude
		accuracy = &fix.AccuracyMeters
		heading = fix.HeadingDeg
		speed = fix.SpeedMps
		capturedAt = &fix.CapturedAt
		s := string(fix.Source)
		source = &s
	}

	_, err := r.db.Exec(ctx, query,
		incident.ID,
		incident.TenantID,
		incident.OriginatorID,
		incident.Category,
		incident.Status,
		lat,
		lon,
		accuracy,
		heading,
		speed,
		capturedAt,
		source,
		incident.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по UUID в рамках тенанта. Инцидент чужого
// тенанта неотличим от несуществующего.
func (r *IncidentRepository) GetByID(ctx context.Context, tenantID string, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE id = $1 AND tenant_id = $2;`

	incident, err := scanIncident(r.db.QueryRow(ctx, query, id, tenantID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// List возвращает инциденты тенанта с пагинацией, новые первыми
func (r *IncidentRepository) List(ctx context.Context, tenantID string, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT ` + incidentColumns + `
		FROM incidents
		WHERE tenant_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, tenantID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// UpdateLocation перезаписывает координату инцидента целиком
func (r *IncidentRepository) UpdateLocation(ctx context.Context, tenantID string, id uuid.UUID, fix models.GeoFix) error {
	query := `
		UPDATE incidents SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			accuracy_meters = $3,
			heading_deg = $4,
			speed_mps = $5,
			fix_captured_at = $6,
			fix_source = $7
		WHERE id = $8 AND tenant_id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		fix.Longitude,
		fix.Latitude,
		fix.AccuracyMeters,
		fix.HeadingDeg,
		fix.SpeedMps,
		fix.CapturedAt,
		fix.Source,
		id,
		tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to update incident location: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// UpdateStatusCAS атомарно переводит статус инцидента. Условие WHERE по
// прежнему статусу гарантирует, что из гонки конкурентных переходов
// выигрывает ровно один: проигравший получает ErrConflict.
func (r *IncidentRepository) UpdateStatusCAS(ctx context.Context, tenantID string, id uuid.UUID, from, to models.IncidentStatus, resolvedAt *time.Time) error {
	query := `
		UPDATE incidents SET
			status = $1,
			resolved_at = $2
		WHERE id = $3 AND tenant_id = $4 AND status = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query, to, resolvedAt, id, tenantID, from)
	if err != nil {
		return fmt.Errorf("failed to transition incident status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.casFailure(ctx, tenantID, id)
	}
	return nil
}

// SetAssignmentCAS атомарно записывает назначение и статус DISPATCHED
// при условии, что текущий статус равен from, а текущее назначение -
// назначению из снимка. Одной проверки статуса при переназначении мало:
// победивший гонку вызов оставляет статус DISPATCHED, и UPDATE
// проигравшего тоже прошёл бы по статусу. Сверка прежнего назначения
// отдаёт проигравшему ErrConflict вместо молчаливой перезаписи.
func (r *IncidentRepository) SetAssignmentCAS(ctx context.Context, tenantID string, id uuid.UUID, from models.IncidentStatus, prev *models.Assignment, assignment models.Assignment) error {
	query := `
		UPDATE incidents SET
			status = $1,
			assigned_subject_id = $2,
			assigned_subject_kind = $3,
			assigned_at = $4
		WHERE id = $5 AND tenant_id = $6 AND status = $7
			AND assigned_subject_id IS NOT DISTINCT FROM $8;
	`
	var prevSubjectID *string
	if prev != nil {
		prevSubjectID = &prev.SubjectID
	}
	cmdTag, err := r.db.Exec(ctx, query,
		models.IncidentStatusDispatched,
		assignment.SubjectID,
		assignment.SubjectKind,
		assignment.AssignedAt,
		id,
		tenantID,
		from,
		prevSubjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to set incident assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return r.casFailure(ctx, tenantID, id)
	}
	return nil
}

// casFailure различает проигрыш гонки и отсутствие инцидента
func (r *IncidentRepository) casFailure(ctx context.Context, tenantID string, id uuid.UUID) error {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM incidents WHERE id = $1 AND tenant_id = $2);`,
		id, tenantID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check incident existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("incident %s: %w", id, models.ErrNotFound)
	}
	return fmt.Errorf("incident %s: %w", id, models.ErrConflict)
}

// Delete удаляет инцидент вместе с его хронологией
func (r *IncidentRepository) Delete(ctx context.Context, tenantID string, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM incidents WHERE id = $1 AND tenant_id = $2;`,
		id, tenantID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// AppendTimeline добавляет запись в хронологию. Таблица append-only:
// правок и удалений отдельных записей нет.
func (r *IncidentRepository) AppendTimeline(ctx context.Context, entry *models.TimelineEntry) error {
	query := `
		INSERT INTO timeline_entries (incident_id, author_kind, message, at)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		entry.IncidentID,
		entry.AuthorKind,
		entry.Message,
		entry.At,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("failed to append timeline entry: %w", err)
	}
	return nil
}

// ListTimeline возвращает хронологию инцидента по возрастанию метки
// времени; записи с равной меткой идут в порядке вставки
func (r *IncidentRepository) ListTimeline(ctx context.Context, tenantID string, incidentID uuid.UUID) ([]*models.TimelineEntry, error) {
	query := `
		SELECT t.id, t.incident_id, t.author_kind, t.message, t.at
		FROM timeline_entries t
		JOIN incidents i ON i.id = t.incident_id
		WHERE t.incident_id = $1 AND i.tenant_id = $2
		ORDER BY t.at, t.id;
	`
	rows, err := r.db.Query(ctx, query, incidentID, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timeline: %w", err)
	}
	defer rows.Close()

	entries := make([]*models.TimelineEntry, 0)
	for rows.Next() {
		entry := &models.TimelineEntry{}
		err := rows.Scan(&entry.ID, &entry.IncidentID, &entry.AuthorKind, &entry.Message, &entry.At)
		if err != nil {
			return nil, fmt.Errorf("failed to scan timeline row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error timeline iteration: %w", err)
	}
	return entries, nil
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (r *IncidentRepository) GetIncidentFromCache(ctx context.Context, tenantID string, id uuid.UUID) (*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, incidentCacheKey(tenantID, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (r *IncidentRepository) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	key := incidentCacheKey(incident.TenantID, incident.ID)
	if err := r.redisClient.Set(ctx, key, val, incidentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (r *IncidentRepository) InvalidateIncidentCache(ctx context.Context, tenantID string, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, incidentCacheKey(tenantID, id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

// Ключ включает тенанта: кэш не может отдать инцидент чужому тенанту
func incidentCacheKey(tenantID string, id uuid.UUID) string {
	return fmt.Sprintf("incident:%s:%s", tenantID, id.String())
}

// scanIncident собирает инцидент из строки с нуллабельными полями
// координаты и назначения
func scanIncident(row pgx.Row) (*models.Incident, error) {
	incident := &models.Incident{}
	var (
		lat, lon, accuracy *float64
		heading, speed     *float64
		capturedAt         *time.Time
		source             *string

		subjectID   *string
		subjectKind *string
		assignedAt  *time.Time
	)

	err := row.Scan(
		&incident.ID,
		&incident.TenantID,
		&incident.OriginatorID,
		&incident.Category,
		&incident.Status,
		&lat,
		&lon,
		&accuracy,
		&heading,
		&speed,
		&capturedAt,
		&source,
		&subjectID,
		&subjectKind,
		&assignedAt,
		&incident.CreatedAt,
		&incident.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}

	if lat != nil && lon != nil {
		fix := &models.GeoFix{
			Latitude:   *lat,
			Longitude:  *lon,
			HeadingDeg: heading,
			SpeedMps:   speed,
			Source:     models.FixSourceUnknown,
		}
		if accuracy != nil {
			fix.AccuracyMeters = *accuracy
		}
		if capturedAt != nil {
			fix.CapturedAt = *capturedAt
		}
		if source != nil {
			fix.Source = models.FixSource(*source)
		}
		incident.Location = fix
	}

	if subjectID != nil && subjectKind != nil && assignedAt != nil {
		incident.Assignment = &models.Assignment{
			SubjectID:   *subjectID,
			SubjectKind: models.SubjectKind(*subjectKind),
			AssignedAt:  *assignedAt,
		}
	}
	return incident, nil
}
