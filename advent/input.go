package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/cespare/advent/source"
)

// openSource picks a source for cfg.input. The returned close function
// must be called when the source is no longer needed.
func openSource(ctx context.Context, cfg *config) (source.Source, func() error, error) {
	nop := func() error { return nil }
	in := cfg.input
	switch {
	case in == "-":
		return source.Reader{R: os.Stdin}, nop, nil
	case strings.HasPrefix(in, "s3://"):
		bucket, key, err := source.ParseS3URL(in)
		if err != nil {
			return nil, nil, err
		}
		client, err := newS3Client(cfg.aws)
		if err != nil {
			return nil, nil, err
		}
		return source.S3{Client: client, Bucket: bucket, Key: key}, nop, nil
	case isDBURL(in):
		db, err := openDB(ctx, in)
		if err != nil {
			return nil, nil, err
		}
		return source.SQL{DB: db, Table: cfg.table}, db.Close, nil
	}
	return source.File(in), nop, nil
}

func isDBURL(s string) bool {
	return strings.HasPrefix(s, "postgres://") ||
		strings.HasPrefix(s, "postgresql://") ||
		strings.HasPrefix(s, "sqlite:")
}

// openDB opens and pings a database named by a postgres:// URL or a
// sqlite:path string.
func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	driver := "postgres"
	if strings.HasPrefix(dsn, "sqlite:") {
		driver = "sqlite"
		dsn = strings.TrimPrefix(dsn, "sqlite:")
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to %s database: %s", driver, err)
	}
	return db, nil
}

func newS3Client(c awsConfig) (*s3.S3, error) {
	region := c.region
	if region == "" {
		if u, err := user.Current(); err == nil && u.HomeDir != "" {
			region, err = sharedRegion(filepath.Join(u.HomeDir, ".aws", "config"), c.profile)
			if err != nil {
				return nil, err
			}
		}
	}
	config := aws.NewConfig()
	if region != "" {
		config = config.WithRegion(region)
	}
	if c.credentials != "" {
		// NewSharedCredentials doesn't fail until the credentials are used.
		if _, err := os.Stat(c.credentials); err != nil {
			return nil, fmt.Errorf("error statting credentials file (%s): %s", c.credentials, err)
		}
		config = config.WithCredentials(credentials.NewSharedCredentials(c.credentials, c.profile))
	}
	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("error creating aws session: %s", err)
	}
	return s3.New(sess), nil
}
