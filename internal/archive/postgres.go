package archive

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/yourorg/listing-api/internal/catalog"
)

// Store mirrors submitted and imported listings into Postgres so they
// survive restarts of the in-memory catalog. It is write-behind only; the
// catalog stays the source of truth for reads.
type Store struct{ DB *sql.DB }

func Open(dsn string) (*Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)
	return &Store{DB: db}, nil
}

func (s *Store) Ping(ctx context.Context) error { return s.DB.PingContext(ctx) }

func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS properties (
            id              TEXT PRIMARY KEY,
            title           TEXT NOT NULL,
            price           BIGINT NOT NULL,
            address         TEXT NOT NULL,
            city            TEXT NOT NULL,
            state           TEXT NOT NULL,
            zip             TEXT NOT NULL,
            lat             DOUBLE PRECISION,
            lng             DOUBLE PRECISION,
            area            INTEGER,
            property_type   TEXT NOT NULL,
            bedrooms        SMALLINT,
            bathrooms       SMALLINT,
            floors          SMALLINT,
            built_year      INTEGER,
            facing          TEXT,
            road_access     TEXT,
            verified        BOOLEAN NOT NULL DEFAULT false,
            description     TEXT,
            amenities       JSONB,
            media           JSONB,
            agent           JSONB,
            price_history   JSONB,
            created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
		`CREATE INDEX IF NOT EXISTS idx_properties_city ON properties(city);`,
		`CREATE INDEX IF NOT EXISTS idx_properties_type ON properties(property_type);`,
		`CREATE TABLE IF NOT EXISTS submission_snapshots (
            id             BIGSERIAL PRIMARY KEY,
            property_id    TEXT NOT NULL,
            source         TEXT NOT NULL,
            payload        JSONB NOT NULL,
            payload_sha256 TEXT NOT NULL,
            received_at    TIMESTAMPTZ NOT NULL DEFAULT now()
        );`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_property ON submission_snapshots(property_id, received_at DESC);`,
	}
	for _, q := range stmts {
		if _, err := s.DB.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

// SaveProperty upserts the record and files the raw payload it came from.
// raw may be nil for records that did not arrive over the wire.
func (s *Store) SaveProperty(ctx context.Context, p catalog.Property, source string, raw []byte) error {
	if s.DB == nil {
		return errors.New("nil db")
	}
	amenities, err := json.Marshal(p.Amenities)
	if err != nil {
		return err
	}
	media, err := json.Marshal(p.Media)
	if err != nil {
		return err
	}
	agent, err := json.Marshal(p.Agent)
	if err != nil {
		return err
	}
	history, err := json.Marshal(p.PriceHistory)
	if err != nil {
		return err
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, `
        INSERT INTO properties (id, title, price, address, city, state, zip, lat, lng, area,
            property_type, bedrooms, bathrooms, floors, built_year, facing, road_access,
            verified, description, amenities, media, agent, price_history)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23)
        ON CONFLICT (id) DO UPDATE SET
            title=EXCLUDED.title, price=EXCLUDED.price, address=EXCLUDED.address,
            city=EXCLUDED.city, state=EXCLUDED.state, zip=EXCLUDED.zip,
            lat=EXCLUDED.lat, lng=EXCLUDED.lng, area=EXCLUDED.area,
            property_type=EXCLUDED.property_type, bedrooms=EXCLUDED.bedrooms,
            bathrooms=EXCLUDED.bathrooms, floors=EXCLUDED.floors,
            built_year=EXCLUDED.built_year, facing=EXCLUDED.facing,
            road_access=EXCLUDED.road_access, verified=EXCLUDED.verified,
            description=EXCLUDED.description, amenities=EXCLUDED.amenities,
            media=EXCLUDED.media, agent=EXCLUDED.agent,
            price_history=EXCLUDED.price_history, updated_at=now()`,
		p.ID, p.Title, p.Price, p.Location.Address, p.Location.City, p.Location.State,
		p.Location.ZipCode, p.Location.Lat, p.Location.Lng, p.Area,
		string(p.Type), p.Bedrooms, p.Bathrooms, p.Floors, p.BuiltYear, string(p.Facing),
		p.RoadAccess, p.Verified, p.Description, amenities, media, agent, history,
	)
	if err != nil {
		return err
	}

	if raw != nil {
		sum := sha256.Sum256(raw)
		sha := hex.EncodeToString(sum[:])
		if _, err = tx.ExecContext(ctx, `
            INSERT INTO submission_snapshots (property_id, source, payload, payload_sha256)
            VALUES ($1,$2,$3,$4)`,
			p.ID, source, string(raw), sha,
		); err != nil {
			return err
		}
	}

	err = tx.Commit()
	return err
}
