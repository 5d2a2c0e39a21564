package migration

import (
	auditdomain "github.com/paydeck/paydeck/internal/audit/domain"
	"github.com/paydeck/paydeck/internal/config"
	employeedomain "github.com/paydeck/paydeck/internal/employee/domain"
	payrundomain "github.com/paydeck/paydeck/internal/payrun/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType != "postgres" {
			return conn.AutoMigrate(
				&employeedomain.Employee{},
				&payrundomain.PayRun{},
				&auditdomain.AuditLog{},
			)
		}

		sqlDB, err := conn.DB()
		if err != nil {
			return err
		}
		return RunMigrations(sqlDB)
	}),
)
