// Package assets embeds static game data.
package assets

import _ "embed"

// ShipCatalogJSON is the ship class catalog.
//
//go:embed ships.json
var ShipCatalogJSON []byte
