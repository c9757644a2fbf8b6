// Copyright 2026 The Surveyboard Authors
// SPDX-License-Identifier: MIT

package output

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davetashner/surveyboard/internal/resolver"
	"github.com/davetashner/surveyboard/internal/section"
	"github.com/davetashner/surveyboard/internal/table"
)

var fixedNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// surveyTable has rows for sections A and B only, so C, D and E are empty.
func surveyTable() *table.Table {
	s := table.String
	return table.MustNew(
		[]string{"section", "f1", "notes"},
		[][]table.Value{
			{s("A"), s("Yes"), s("<b>bold</b>")},
			{s("A"), s("No"), s("pipe | here")},
			{s("B"), s("Yes"), table.Empty()},
		},
	)
}

func testDashboard(t *testing.T, tbl *table.Table) *Dashboard {
	t.Helper()
	r := resolver.New(resolver.FilterStrategy{Table: tbl, Source: "summary_statistics.csv"})
	d, err := BuildDashboard(context.Background(), r, section.DefaultCatalog(), Options{nowFunc: func() time.Time { return fixedNow }})
	require.NoError(t, err)
	return d
}
