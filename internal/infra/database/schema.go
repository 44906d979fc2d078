package database

import (
	"context"
	"database/sql"
)

// schema is applied at startup so a fresh database works without manual
// migration, matching how the site has always bootstrapped its tables.
const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	business TEXT NOT NULL,
	scaling_challenge TEXT NOT NULL,
	contacted BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS class_signups (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	business TEXT,
	format TEXT NOT NULL,
	experience TEXT NOT NULL,
	contacted BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS prompts (
	id UUID PRIMARY KEY,
	title TEXT NOT NULL,
	icon TEXT NOT NULL DEFAULT '📝',
	description TEXT NOT NULL,
	tags TEXT[] NOT NULL DEFAULT '{}',
	content TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS businesses (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	thumbnail TEXT,
	website_url TEXT,
	description TEXT,
	value_delivered NUMERIC NOT NULL DEFAULT 0,
	revenue_generated NUMERIC NOT NULL DEFAULT 0,
	color TEXT NOT NULL DEFAULT '#3B82F6',
	video_links TEXT[] NOT NULL DEFAULT '{}',
	github_links TEXT[] NOT NULL DEFAULT '{}',
	additional_links TEXT[] NOT NULL DEFAULT '{}',
	featured BOOLEAN NOT NULL DEFAULT FALSE,
	display_order INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS newsletter_subscribers (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	phone TEXT,
	name TEXT,
	subscribed BOOLEAN NOT NULL DEFAULT TRUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS newsletter_drafts (
	id UUID PRIMARY KEY,
	subject TEXT NOT NULL,
	content TEXT NOT NULL,
	sms_content TEXT,
	status TEXT NOT NULL DEFAULT 'draft',
	approved_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
