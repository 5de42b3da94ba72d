package catalog

import (
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"github.com/navsight/gunnery/pkg/core"
)

// ShipRecord is the database row backing one catalog entry. Class is stored
// singular ("destroyer"); loading pluralizes it to match the lookup layout.
type ShipRecord struct {
	ID            uint   `gorm:"primarykey"`
	Class         string `gorm:"size:32;uniqueIndex:idx_ship_class_name"`
	Name          string `gorm:"size:64;uniqueIndex:idx_ship_class_name"`
	MaxSpeed      float64
	Acceleration  float64
	ShellVelocity float64
}

// TableName keeps the table name stable across gorm naming strategies.
func (ShipRecord) TableName() string {
	return "ship_params"
}

// SeedRecords returns the starter rows written into an empty catalog table.
func SeedRecords() []ShipRecord {
	return []ShipRecord{
		{Class: core.ClassDestroyer, Name: "fletcher", MaxSpeed: 36.5, Acceleration: 2.2, ShellVelocity: 792},
		{Class: core.ClassDestroyer, Name: "gearing", MaxSpeed: 36.0, Acceleration: 2.1, ShellVelocity: 792},
		{Class: core.ClassCruiser, Name: "cleveland", MaxSpeed: 32.5, Acceleration: 1.9, ShellVelocity: 812},
		{Class: core.ClassCruiser, Name: "des moines", MaxSpeed: 33.0, Acceleration: 1.8, ShellVelocity: 762},
		{Class: core.ClassBattleship, Name: "iowa", MaxSpeed: 33.0, Acceleration: 1.2, ShellVelocity: 820},
		{Class: core.ClassBattleship, Name: "montana", MaxSpeed: 28.0, Acceleration: 1.1, ShellVelocity: 820},
	}
}

// LoadDB reads all ship records from the database. Like LoadFile, failure
// degrades to the empty catalog rather than propagating.
func LoadDB(db *gorm.DB, logger *slog.Logger) *Catalog {
	var records []ShipRecord
	if err := db.Find(&records).Error; err != nil {
		logger.Error("Failed to query ship catalog, using fallback params only", "error", err)
		return Empty()
	}

	classes := make(map[string]map[string]core.ShipParams)
	for _, r := range records {
		class := strings.ToLower(r.Class) + "s"
		if classes[class] == nil {
			classes[class] = make(map[string]core.ShipParams)
		}
		classes[class][strings.ToLower(r.Name)] = core.ShipParams{
			MaxSpeed:      r.MaxSpeed,
			Acceleration:  r.Acceleration,
			ShellVelocity: r.ShellVelocity,
		}
	}

	c := New(classes)
	logger.Info("Ship catalog loaded from database", "ships", c.Len())
	return c
}
