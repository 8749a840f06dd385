// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sink provides the destinations charts are written to.
package sink

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
)

// A Sink creates named output files. Each name is written by at most
// one caller, so implementations need no locking between names.
type Sink interface {
	// Create opens name for writing, replacing any existing
	// content. The output is complete once Close returns nil.
	Create(ctx context.Context, name string) (io.WriteCloser, error)

	// Path returns a human-readable location of name, for logs
	// and errors.
	Path(name string) string
}

// Dir is a Sink that writes into a local directory. The directory is
// not created; writing into a missing directory fails.
type Dir string

func (d Dir) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	f, err := os.Create(d.Path(name))
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (d Dir) Path(name string) string {
	return filepath.Join(string(d), name)
}

// GCS is a Sink that writes objects into a Google Cloud Storage
// bucket, under an optional prefix.
type GCS struct {
	Bucket *storage.BucketHandle
	Name   string // bucket name, for Path
	Prefix string
}

func (g *GCS) Create(ctx context.Context, name string) (io.WriteCloser, error) {
	w := g.Bucket.Object(path.Join(g.Prefix, name)).NewWriter(ctx)
	w.ContentType = contentType(name)
	return w, nil
}

// contentType returns the MIME type for name, or "" to let the
// storage service pick one.
func contentType(name string) string {
	return mime.TypeByExtension(path.Ext(name))
}

func (g *GCS) Path(name string) string {
	return "gs://" + g.Name + "/" + path.Join(g.Prefix, name)
}

// ParseGCS splits a gs://bucket/prefix URL.
func ParseGCS(target string) (bucket, prefix string, err error) {
	rest, ok := strings.CutPrefix(target, "gs://")
	if !ok {
		return "", "", fmt.Errorf("%s: not a gs:// URL", target)
	}
	bucket, prefix, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("%s: missing bucket name", target)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}

// Open returns the Sink for target: a gs://bucket/prefix URL, or
// otherwise a local directory. The returned done function releases
// any client the Sink holds.
func Open(ctx context.Context, target string) (s Sink, done func() error, err error) {
	if !strings.HasPrefix(target, "gs://") {
		return Dir(target), func() error { return nil }, nil
	}
	bucket, prefix, err := ParseGCS(target)
	if err != nil {
		return nil, nil, err
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to cloud storage: %w", err)
	}
	return &GCS{Bucket: client.Bucket(bucket), Name: bucket, Prefix: prefix}, client.Close, nil
}
