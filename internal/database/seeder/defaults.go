package seeder

// Fixed ids keep the demo seeders idempotent across runs.
const (
	rootUnitID      = "6f0a1c9e-0000-4000-8000-000000000001"
	engUnitID       = "6f0a1c9e-0000-4000-8000-000000000002"
	platformUnitID  = "6f0a1c9e-0000-4000-8000-000000000003"
	salesUnitID     = "6f0a1c9e-0000-4000-8000-000000000004"
	peopleOpsUnitID = "6f0a1c9e-0000-4000-8000-000000000005"

	ceoPersonID   = "9b2d4e11-0000-4000-8000-000000000001"
	engMgrID      = "9b2d4e11-0000-4000-8000-000000000002"
	devOneID      = "9b2d4e11-0000-4000-8000-000000000003"
	devTwoID      = "9b2d4e11-0000-4000-8000-000000000004"
	salesHeadID   = "9b2d4e11-0000-4000-8000-000000000005"
	hrPartnerID   = "9b2d4e11-0000-4000-8000-000000000006"

	adminUserID = "3c7e8a20-0000-4000-8000-000000000001"
)
