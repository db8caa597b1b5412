package m_family

import "time"

// Data represents the database model for the families table.
type Data struct {
	FamilyID  string
	Name      string
	CreatedAt time.Time
}
