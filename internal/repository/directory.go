package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
	"github.com/shenikar/emergency_dispatch_system/internal/service"
)

// DirectoryRepository хранит справочники дежурных и техники тенанта
type DirectoryRepository struct {
	db *pgxpool.Pool
}

func NewDirectoryRepository(db *pgxpool.Pool) service.DirectoryRepository {
	return &DirectoryRepository{db: db}
}

// ListResponders возвращает дежурных тенанта в порядке регистрации
func (r *DirectoryRepository) ListResponders(ctx context.Context, tenantID string) ([]*models.Responder, error) {
	query := `
		SELECT id, tenant_id, name, position, on_duty
		FROM responders
		WHERE tenant_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responders: %w", err)
	}
	defer rows.Close()

	responders := make([]*models.Responder, 0)
	for rows.Next() {
		responder := &models.Responder{}
		err := rows.Scan(&responder.ID, &responder.TenantID, &responder.Name, &responder.Position, &responder.OnDuty)
		if err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error responders iteration: %w", err)
	}
	return responders, nil
}

// ListAssets возвращает технику тенанта в порядке регистрации
func (r *DirectoryRepository) ListAssets(ctx context.Context, tenantID string) ([]*models.Asset, error) {
	query := `
		SELECT id, tenant_id, name, status, COALESCE(custodian_id, ''), updated_at
		FROM fixed_assets
		WHERE tenant_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]*models.Asset, 0)
	for rows.Next() {
		asset := &models.Asset{}
		err := rows.Scan(&asset.ID, &asset.TenantID, &asset.Name, &asset.Status, &asset.CustodianID, &asset.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		assets = append(assets, asset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error assets iteration: %w", err)
	}
	return assets, nil
}

// GetAsset возвращает единицу техники тенанта
func (r *DirectoryRepository) GetAsset(ctx context.Context, tenantID, assetID string) (*models.Asset, error) {
	query := `
		SELECT id, tenant_id, name, status, COALESCE(custodian_id, ''), updated_at
		FROM fixed_assets
		WHERE id = $1 AND tenant_id = $2;
	`
	asset := &models.Asset{}
	err := r.db.QueryRow(ctx, query, assetID, tenantID).Scan(
		&asset.ID, &asset.TenantID, &asset.Name, &asset.Status, &asset.CustodianID, &asset.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("asset %s: %w", assetID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

// SetAssetStatus переводит технику в новый статус
func (r *DirectoryRepository) SetAssetStatus(ctx context.Context, tenantID, assetID string, status models.AssetStatus) error {
	query := `
		UPDATE fixed_assets SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2 AND tenant_id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, assetID, tenantID)
	if err != nil {
		return fmt.Errorf("failed to set asset status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("asset %s: %w", assetID, models.ErrNotFound)
	}
	return nil
}
