package tenant

import "gorm.io/gorm"

// Scope limits a query to one company. An empty company id matches
// nothing, so a caller that lost its tenant never sees every row.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if companyID == "" {
			return db.Where("1 = 0")
		}
		return db.Where("company_id = ?", companyID)
	}
}
