package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cropcare/entities"
)

// Open connects to the configured store and runs migrations. driver is one of
// sqlite, postgres or mysql; path is used by sqlite, dsn by the others.
func Open(driver, path, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "", "sqlite":
		dialector = sqlite.Open(path)
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if driver == "" || driver == "sqlite" {
		// sqlite serialises writers; one connection avoids SQLITE_BUSY under load.
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
		// must run BEFORE AutoMigrate, which would otherwise try to ALTER the old users table
		if err := migrateLegacyUsers(db); err != nil {
			return nil, fmt.Errorf("migrate users: %w", err)
		}
	} else if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.SoilRecord{},
		&entities.CropRecord{},
		&entities.User{},
		&entities.Admin{},
		&entities.Feedback{},
		&entities.Session{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// migrateLegacyUsers rebuilds a users table from the previous release, which
// kept plain-text passwords under `password` and used `id` as key. Passwords
// are bcrypt-hashed during the copy.
func migrateLegacyUsers(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='users'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(users)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}
	oldCols := map[string]bool{}
	for _, c := range cols {
		oldCols[strings.ToLower(c.Name)] = true
	}
	if oldCols["password_hash"] || !oldCols["password"] {
		return nil
	}

	type legacyUser struct {
		Username  string
		Email     string
		Password  string
		CreatedAt sql.NullString
		LastLogin sql.NullString
	}
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	var rows []legacyUser
	q := fmt.Sprintf(`SELECT username, email, password, %s, %s FROM users`, sel("created_at"), sel("last_login"))
	if err := db.Raw(q).Scan(&rows).Error; err != nil {
		return fmt.Errorf("read legacy users: %w", err)
	}
	log.Infof("migrating %d legacy users to hashed passwords", len(rows))

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`ALTER TABLE users RENAME TO users_legacy`).Error; err != nil {
			return err
		}
		if err := tx.Migrator().CreateTable(&entities.User{}); err != nil {
			return err
		}
		for _, r := range rows {
			hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash password for %s: %w", r.Username, err)
			}
			u := entities.User{Username: r.Username, Email: r.Email, PasswordHash: string(hash)}
			u.CreatedAt = time.Now()
			if t, ok := parseLegacyTime(r.CreatedAt); ok {
				u.CreatedAt = t
			}
			if t, ok := parseLegacyTime(r.LastLogin); ok {
				u.LastLogin = &t
			}
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
		}
		return tx.Exec(`DROP TABLE users_legacy`).Error
	})
}

var legacyTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parseLegacyTime(v sql.NullString) (time.Time, bool) {
	if !v.Valid || v.String == "" {
		return time.Time{}, false
	}
	for _, layout := range legacyTimeLayouts {
		if t, err := time.Parse(layout, v.String); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
