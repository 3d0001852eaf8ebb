package materials

import (
	"fmt"

	"github.com/RoanBrand/xraydb/config"
)

// FromConfig builds the catalog described by conf.
func FromConfig(conf *config.Config) (*Catalog, error) {
	var sources []Source
	for _, c := range conf.Catalog {
		switch c.Type {
		case "yaml":
			sources = append(sources, YAMLFile{Path: c.Path})
		case "xml":
			sources = append(sources, XMLFiles{Path: c.Path})
		case "mssql":
			sources = append(sources, SQLServer{
				Address:  c.Address,
				User:     c.User,
				Password: c.Password,
				Database: c.Database,
				Table:    c.Table,
			})
		case "mdb":
			sources = append(sources, AccessDB{DSN: c.Path, Table: c.Table})
		default:
			return nil, fmt.Errorf("unknown catalog source type %q", c.Type)
		}
	}
	if conf.RemoteMachineAddress != "" {
		sources = append(sources, Remote{Address: conf.RemoteMachineAddress})
	}
	return NewCatalog(conf.CacheAge(), sources...), nil
}
