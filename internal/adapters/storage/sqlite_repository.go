package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/renato0307/docdesk/internal/domain"
	"github.com/renato0307/docdesk/internal/logging"
	"github.com/renato0307/docdesk/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.WorkspaceRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.WorkspaceRepository = (*SQLiteRepository)(nil)

// gormLogger routes GORM output to the docdesk logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	default:
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("DOCDESK_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the SSH server and the CLI share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&WorkspaceModel{}, &CaddyModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Workspace database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements WorkspaceReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.Workspace, error) {
	return r.first(ctx, "id = ?", id)
}

// GetByName implements WorkspaceReader.GetByName
func (r *SQLiteRepository) GetByName(ctx context.Context, name string) (*domain.Workspace, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *SQLiteRepository) first(ctx context.Context, query string, arg string) (*domain.Workspace, error) {
	var model WorkspaceModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Documents", orderByPosition).
			Where(query, arg).
			First(&model).Error
	}, maxRetries)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("workspace %s: %w", arg, domain.ErrWorkspaceNotFound)
		}
		return nil, err
	}
	return workspaceModelToDomain(model)
}

// List implements WorkspaceReader.List, most recently modified first
func (r *SQLiteRepository) List(ctx context.Context) ([]*domain.Workspace, error) {
	var models []WorkspaceModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Documents", orderByPosition).
			Order("last_modified DESC").
			Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	workspaces := make([]*domain.Workspace, 0, len(models))
	for _, m := range models {
		ws, err := workspaceModelToDomain(m)
		if err != nil {
			// One corrupt row must not hide the others
			logging.Logger.Warn("Skipping unreadable workspace", "id", m.ID, "error", err)
			continue
		}
		workspaces = append(workspaces, ws)
	}
	return workspaces, nil
}

// Save implements WorkspaceWriter.Save. The caddy rows are replaced as a whole.
func (r *SQLiteRepository) Save(ctx context.Context, ws *domain.Workspace) error {
	model := domainToWorkspaceModel(ws)
	docs := model.Documents
	model.Documents = nil

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&model).Error; err != nil {
				return err
			}
			if err := tx.Where("workspace_id = ?", model.ID).Delete(&CaddyModel{}).Error; err != nil {
				return err
			}
			if len(docs) == 0 {
				return nil
			}
			return tx.Create(&docs).Error
		})
	}, maxRetries)

	if isUniqueViolation(err) {
		return fmt.Errorf("workspace %s: %w", model.Name, domain.ErrWorkspaceExists)
	}
	return err
}

// Delete implements WorkspaceWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("workspace_id = ?", id).Delete(&CaddyModel{}).Error; err != nil {
				return err
			}
			result := tx.Where("id = ?", id).Delete(&WorkspaceModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("workspace %s: %w", id, domain.ErrWorkspaceNotFound)
			}
			return nil
		})
	}, maxRetries)
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// withRetry retries operations on SQLITE_BUSY with linear backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
