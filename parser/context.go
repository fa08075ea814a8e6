package parser

import (
	"github.com/forsslund/sie/document"
)

// overrideKind distinguishes the two deferred override records.
type overrideKind int

const (
	overrideType overrideKind = iota // #KTYP
	overrideSRU                      // #SRU
)

func (k overrideKind) String() string {
	if k == overrideSRU {
		return "#SRU"
	}
	return "#KTYP"
}

// override is one queued #KTYP or #SRU operation. Overrides are collected
// during the scan and replayed after it, so they apply regardless of where
// they appeared relative to the account declaration.
type override struct {
	account string
	kind    overrideKind
	value   string
	line    int
}

// parseContext is the mutable in-progress document plus the deferred
// override queue and the voucher scope state. It is owned exclusively by
// one Parse invocation, constructed fresh and discarded after assembly.
type parseContext struct {
	doc       *document.Document
	overrides []override
	scope     voucherScope

	// declared tracks #KONTO declarations by line so a re-declaration can
	// be reported as a collision. Implicitly created accounts are not
	// declarations.
	declared  map[string]int
	collision *ValidationError
}

func newParseContext() *parseContext {
	return &parseContext{
		doc:      document.New(),
		declared: make(map[string]int),
	}
}

// ensureAccount returns the account with the given identifier, creating it
// with its default BAS classification on first reference. Balance and
// transaction records may legally reference accounts before their #KONTO
// declaration.
func (pc *parseContext) ensureAccount(id string) *document.Account {
	if acc, ok := pc.doc.Accounts[id]; ok {
		return acc
	}
	acc := document.NewAccount(id, "")
	pc.doc.Accounts[id] = acc
	return acc
}

// enqueueOverride records a deferred override for the resolution pass.
// Override handlers never mutate account state immediately.
func (pc *parseContext) enqueueOverride(account string, kind overrideKind, value string, line int) {
	pc.overrides = append(pc.overrides, override{
		account: account,
		kind:    kind,
		value:   value,
		line:    line,
	})
}
