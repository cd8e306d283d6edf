package migration

import (
	invoicedomain "github.com/smallbiznis/billd/internal/invoice/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(Run),
)

// Run creates or updates the invoices table at startup.
func Run(db *gorm.DB, log *zap.Logger) error {
	if err := db.AutoMigrate(&invoicedomain.Invoice{}); err != nil {
		return err
	}
	log.Info("migrations applied")
	return nil
}
