package model

import "time"

// Repair is a maintenance record for a plane.  Rows are produced by the
// maintenance workflow; this service only reads them for reporting.
type Repair struct {
	ID         uint64    // repairs.rid
	PlaneID    uint64    // repairs.plane_id
	RepairDate time.Time // repairs.repair_date
}
