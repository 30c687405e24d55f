// Package migration aplica o schema do banco usando golang-migrate
package migration

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-analytics-api/infrastructure/migration/migrations"
)

// ErrDirtyDatabase indica que uma migração anterior falhou no meio do caminho
var ErrDirtyDatabase = errors.New("database is in dirty state")

// Up aplica todas as migrações pendentes até migrations.Version
func Up(dsn string) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("erro ao abrir migrações embutidas: %w", err)
	}
	defer source.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", source, dsn)
	if err != nil {
		return fmt.Errorf("erro ao inicializar migrate: %w", err)
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}

	if dirty {
		return fmt.Errorf("%w (versão %d)", ErrDirtyDatabase, version)
	}

	if err = mg.Migrate(migrations.Version); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logrus.WithField("version", version).Info("Schema já está atualizado")
			return nil
		}
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	logrus.WithField("version", migrations.Version).Info("Migrações aplicadas com sucesso")
	return nil
}
