package api

import (
	"github.com/Gayatrinj/Your-Personal-Stylists/store"
	"github.com/Gayatrinj/Your-Personal-Stylists/stylist"
)

// API bundles the injected collaborators the handlers need: the collection
// store, the outfit ledger over it, and the suggestion engine.
type API struct {
	Store  store.Store
	Ledger *stylist.Ledger
	Engine *stylist.Engine
}

func New(s store.Store, engine *stylist.Engine) *API {
	return &API{
		Store:  s,
		Ledger: stylist.NewLedger(s),
		Engine: engine,
	}
}
