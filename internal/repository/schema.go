package repository

// Schema creates every table the service reads or writes. It is idempotent.
const Schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS destinations (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	address VARCHAR(255) NOT NULL DEFAULT '',
	city VARCHAR(255) NOT NULL DEFAULT '',
	state VARCHAR(64) NOT NULL DEFAULT '',
	zip VARCHAR(16) NOT NULL DEFAULT '',
	website_url VARCHAR(512) NOT NULL DEFAULT '',
	image_url VARCHAR(512) NOT NULL DEFAULT '',
	published BOOLEAN NOT NULL DEFAULT FALSE,
	search_tsvector TSVECTOR GENERATED ALWAYS AS (
		to_tsvector('english', name || ' ' || description || ' ' || address || ' ' || city)
	) STORED,
	geom GEOGRAPHY(POINT, 4326) NOT NULL
);
CREATE INDEX IF NOT EXISTS destinations_geom_idx ON destinations USING GIST (geom);
CREATE INDEX IF NOT EXISTS destinations_search_tsvector_idx ON destinations USING GIN (search_tsvector);

CREATE TABLE IF NOT EXISTS articles (
	id BIGSERIAL PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	slug VARCHAR(255) NOT NULL UNIQUE,
	content_type VARCHAR(4) NOT NULL,
	wide_image VARCHAR(512) NOT NULL DEFAULT '',
	narrow_image VARCHAR(512) NOT NULL DEFAULT '',
	publish_date TIMESTAMPTZ,
	published BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS sessions (
	id UUID PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS preferences (
	session_id UUID NOT NULL REFERENCES sessions (id) ON DELETE CASCADE,
	name VARCHAR(64) NOT NULL,
	value TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (session_id, name)
);
`
