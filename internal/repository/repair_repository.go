package repository

import (
	"context"
	"database/sql"
)

// RepairRepo reads maintenance records for reporting.  Repairs are
// produced by an external workflow; this service never writes them.
type RepairRepo struct {
	db *sql.DB
}

// NewRepairRepo constructs a RepairRepo given a DB handle.
func NewRepairRepo(db *sql.DB) *RepairRepo { return &RepairRepo{db: db} }

// PlaneRepairCount pairs a plane with its total repair count.
type PlaneRepairCount struct {
	PlaneID uint64 `json:"plane_id"`
	Make    string `json:"make"`
	Model   string `json:"model"`
	Repairs uint64 `json:"repairs"`
}

// CountPerPlane lists repair totals per plane, most repaired first.
func (r *RepairRepo) CountPerPlane(ctx context.Context) ([]PlaneRepairCount, error) {
	const q = `SELECT p.id, p.make, p.model, COUNT(rp.rid)
		FROM repairs rp
		JOIN planes p ON p.id = rp.plane_id
		GROUP BY p.id, p.make, p.model
		ORDER BY COUNT(rp.rid) DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]PlaneRepairCount, 0)
	for rows.Next() {
		var c PlaneRepairCount
		if err := rows.Scan(&c.PlaneID, &c.Make, &c.Model, &c.Repairs); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// YearRepairCount pairs a calendar year with its repair total.
type YearRepairCount struct {
	Year    uint32 `json:"year"`
	Repairs uint64 `json:"repairs"`
}

// CountPerYear lists repair totals per year in ascending order of count.
func (r *RepairRepo) CountPerYear(ctx context.Context) ([]YearRepairCount, error) {
	const q = `SELECT YEAR(repair_date), COUNT(rid)
		FROM repairs
		GROUP BY YEAR(repair_date)
		ORDER BY COUNT(rid) ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]YearRepairCount, 0)
	for rows.Next() {
		var c YearRepairCount
		if err := rows.Scan(&c.Year, &c.Repairs); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
