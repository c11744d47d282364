// Package datasource selects the data source adapter for a configured
// location.
package datasource

import (
	"time"

	"github.com/custodia-labs/postliste/internal/adapters/driven/datasource/dir"
	"github.com/custodia-labs/postliste/internal/adapters/driven/datasource/web"
	"github.com/custodia-labs/postliste/internal/core/domain"
	"github.com/custodia-labs/postliste/internal/core/ports/driven"
)

// New returns a web source for http(s) locations and a directory source
// otherwise.
func New(data domain.DataSettings, httpSettings domain.HTTPSettings) (driven.DataSource, error) {
	if data.IsRemote() {
		src, err := web.NewSource(data.Source, web.Config{
			Timeout:           time.Duration(httpSettings.TimeoutSeconds) * time.Second,
			RequestsPerSecond: httpSettings.RequestsPerSecond,
		})
		if err != nil {
			return nil, err
		}
		return src, nil
	}
	return dir.NewSource(data.Source), nil
}
