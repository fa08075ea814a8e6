package parser

import (
	"github.com/forsslund/sie/document"
)

// The deferred resolution pass. #KTYP and #SRU records may legally appear
// before the #KONTO they refer to, so applying them during the scan would
// either fail or guess. The queue is replayed here, once, after the whole
// input has been dispatched; replay order preserves source order, so the
// last override of a kind for an account wins.

func (pc *parseContext) resolve() error {
	if pc.collision != nil {
		return pc.collision
	}

	for _, ov := range pc.overrides {
		acc, ok := pc.doc.Accounts[ov.account]
		if !ok {
			return newValidationError(ov.account,
				"line %d: %s override references unknown account %q", ov.line, ov.kind, ov.account)
		}

		switch ov.kind {
		case overrideType:
			typ, err := document.ParseTypeCode(ov.value)
			if err != nil {
				return newValidationError(ov.account, "line %d: #KTYP %s: %v", ov.line, ov.account, err)
			}
			acc.Type = typ
		case overrideSRU:
			acc.SRU = ov.value
		}
	}
	return nil
}

// verifyTransactionAccounts checks that every transaction's account id
// resolves to an account in the document. Accounts are created on first
// reference during the scan, so this only trips if that bookkeeping ever
// regresses; a dangling id must surface as a ValidationError, never a
// silently broken document.
func (pc *parseContext) verifyTransactionAccounts() error {
	for _, v := range pc.doc.Vouchers {
		for _, t := range v.Transactions {
			if _, ok := pc.doc.Accounts[t.Account]; !ok {
				return newValidationError(t.Account,
					"voucher %s references unknown account %q", v.Label(), t.Account)
			}
		}
	}
	return nil
}
