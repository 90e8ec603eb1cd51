package server_test

import (
	"testing"

	"waifulist/core/reconcile"
	"waifulist/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		show      string
		sort      string
		wantShow  reconcile.DisplayCap
		wantSort  reconcile.SortKey
		wantValid bool
	}{
		{"Standard", "200", "date", 200, reconcile.SortDate, true},
		{"All", "all", "name", reconcile.ShowAll, reconcile.SortName, true},
		{"Empty", "", "", reconcile.DefaultDisplayCap, reconcile.SortDate, true},
		{"InvalidShow", "zero", "id", reconcile.DefaultDisplayCap, reconcile.SortID, false},
		{"InvalidSort", "100", "rating", 100, reconcile.SortDate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{DefaultShow: tt.show, DefaultSort: tt.sort}
			show, sort := c.Defaults()
			assert.Equal(t, tt.wantShow, show)
			assert.Equal(t, tt.wantSort, sort)
			assert.Equal(t, tt.wantValid, c.IsValid())
		})
	}
}
