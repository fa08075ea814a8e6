package parser

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/forsslund/sie/document"
)

// Record handlers. Each handler applies one tokenized line to the parse
// context; none of them returns a new document. Handlers that need more
// fields than the line carries fail with a ParseError so malformed records
// are never half-applied.

func handleProgram(pc *parseContext, ln Line) error {
	if len(ln.Fields) == 0 {
		return newParseError(ln.Number, "#PROGRAM: missing program name")
	}
	parts := make([]string, 0, len(ln.Fields))
	for _, f := range ln.Fields {
		parts = append(parts, f.Text)
	}
	pc.doc.Program = strings.Join(parts, " ")
	return nil
}

func handleGen(pc *parseContext, ln Line) error {
	if len(ln.Fields) == 0 {
		return newParseError(ln.Number, "#GEN: missing generation date")
	}
	date, err := document.ParseDate(ln.Text(0))
	if err != nil {
		return newParseError(ln.Number, "#GEN: %v", err)
	}
	pc.doc.Generated = date
	pc.doc.GeneratedBy = ln.Text(1)
	return nil
}

func handleAddress(pc *parseContext, ln Line) error {
	if len(ln.Fields) == 0 {
		return newParseError(ln.Number, "#ADRESS: expected at least one field")
	}
	for _, f := range ln.Fields {
		pc.doc.Company.Address = append(pc.doc.Company.Address, f.Text)
	}
	return nil
}

func handleKonto(pc *parseContext, ln Line) error {
	if len(ln.Fields) < 2 {
		return newParseError(ln.Number, "#KONTO: expected account id and name")
	}
	id := ln.Text(0)
	if prev, ok := pc.declared[id]; ok && pc.collision == nil {
		pc.collision = newValidationError(id,
			"line %d: account %q already declared at line %d", ln.Number, id, prev)
	}
	pc.declared[id] = ln.Number

	acc := pc.ensureAccount(id)
	acc.Name = ln.Text(1)
	return nil
}

func handleKtyp(pc *parseContext, ln Line) error {
	if len(ln.Fields) < 2 {
		return newParseError(ln.Number, "#KTYP: expected account id and type code")
	}
	pc.enqueueOverride(ln.Text(0), overrideType, ln.Text(1), ln.Number)
	return nil
}

func handleSru(pc *parseContext, ln Line) error {
	if len(ln.Fields) < 2 {
		return newParseError(ln.Number, "#SRU: expected account id and SRU code")
	}
	pc.enqueueOverride(ln.Text(0), overrideSRU, ln.Text(1), ln.Number)
	return nil
}

func handleRar(pc *parseContext, ln Line) error {
	if len(ln.Fields) < 2 {
		return newParseError(ln.Number, "#RAR: expected period index and start date")
	}
	index, err := strconv.Atoi(ln.Text(0))
	if err != nil {
		return newParseError(ln.Number, "#RAR: invalid period index %q", ln.Text(0))
	}
	start, err := document.ParseDate(ln.Text(1))
	if err != nil {
		return newParseError(ln.Number, "#RAR: %v", err)
	}

	period := document.Period{Index: index, Start: start}
	if len(ln.Fields) > 2 {
		end, err := document.ParseDate(ln.Text(2))
		if err != nil {
			return newParseError(ln.Number, "#RAR: %v", err)
		}
		period.End = end
	}

	pc.doc.Periods[index] = period
	return nil
}

func handleDim(pc *parseContext, ln Line) error {
	if len(ln.Fields) < 2 {
		return newParseError(ln.Number, "#DIM: expected dimension id and name")
	}
	id := ln.Text(0)
	pc.doc.Dimensions[id] = &document.Dimension{ID: id, Name: ln.Text(1)}
	return nil
}

func handleObjekt(pc *parseContext, ln Line) error {
	if len(ln.Fields) < 3 {
		return newParseError(ln.Number, "#OBJEKT: expected dimension id, object id and name")
	}
	obj := &document.DimensionObject{
		Dimension: ln.Text(0),
		ID:        ln.Text(1),
		Name:      ln.Text(2),
	}
	pc.doc.Objects[document.ObjectKey{Dimension: obj.Dimension, Object: obj.ID}] = obj
	return nil
}

// handleBalance handles #IB, #UB and #RES. The referenced account is
// created on first sight; balances may precede the #KONTO declaration.
func handleBalance(pc *parseContext, ln Line, kind document.BalanceKind) error {
	if len(ln.Fields) < 3 {
		return newParseError(ln.Number, "%s: expected period index, account id and amount", kind)
	}

	period, err := strconv.Atoi(ln.Text(0))
	if err != nil {
		return newParseError(ln.Number, "%s: invalid period index %q", kind, ln.Text(0))
	}
	amount, err := parseDecimal(ln.Text(2))
	if err != nil {
		return newParseError(ln.Number, "%s: invalid amount %q", kind, ln.Text(2))
	}

	balance := document.Balance{Amount: amount}
	if len(ln.Fields) > 3 {
		quantity, err := parseDecimal(ln.Text(3))
		if err != nil {
			return newParseError(ln.Number, "%s: invalid quantity %q", kind, ln.Text(3))
		}
		balance.Quantity = quantity
	}

	pc.ensureAccount(ln.Text(1)).SetBalance(period, kind, balance)
	return nil
}

func handleVer(pc *parseContext, ln Line) error {
	if len(ln.Fields) < 3 {
		return newParseError(ln.Number, "#VER: expected series, number and date")
	}
	date, err := document.ParseDate(ln.Text(2))
	if err != nil {
		return newParseError(ln.Number, "#VER: %v", err)
	}

	v := &document.Voucher{
		Series: ln.Text(0),
		Number: ln.Text(1),
		Date:   date,
		Text:   ln.Text(3),
	}
	if len(ln.Fields) > 4 {
		regDate, err := document.ParseDate(ln.Text(4))
		if err != nil {
			return newParseError(ln.Number, "#VER: %v", err)
		}
		v.RegisteredAt = regDate
	}

	if err := pc.scope.beginVoucher(v); err != nil {
		return newParseError(ln.Number, "%v", err)
	}
	return nil
}

// handleTrans handles one transaction line:
//
//	#TRANS account {objects} amount [date] [text] [quantity]
//
// The object list pairs dimension ids with object ids and may be empty.
// The transaction date defaults to the voucher date.
func handleTrans(pc *parseContext, ln Line) error {
	if len(ln.Fields) == 0 {
		return newParseError(ln.Number, "#TRANS: expected account id")
	}

	t := &document.Transaction{Account: ln.Text(0)}
	idx := 1

	objects, next, err := parseObjectList(ln, idx)
	if err != nil {
		return err
	}
	t.Objects = objects
	idx = next

	if idx >= len(ln.Fields) {
		return newParseError(ln.Number, "#TRANS: missing amount")
	}
	amount, err := parseDecimal(ln.Text(idx))
	if err != nil {
		return newParseError(ln.Number, "#TRANS: invalid amount %q", ln.Text(idx))
	}
	t.Amount = amount
	idx++

	// Optional trailing fields: an unquoted field here must be the
	// transaction date, a quoted one the transaction text.
	if idx < len(ln.Fields) && !ln.Fields[idx].Quoted {
		date, err := document.ParseDate(ln.Text(idx))
		if err != nil {
			return newParseError(ln.Number, "#TRANS: %v", err)
		}
		t.Date = date
		idx++
	}
	if idx < len(ln.Fields) && ln.Fields[idx].Quoted {
		t.Text = ln.Text(idx)
		idx++
	}
	if idx < len(ln.Fields) {
		quantity, err := parseDecimal(ln.Text(idx))
		if err != nil {
			return newParseError(ln.Number, "#TRANS: invalid quantity %q", ln.Text(idx))
		}
		t.Quantity = quantity
	}

	if err := pc.scope.appendTransaction(t); err != nil {
		return newParseError(ln.Number, "%v", err)
	}
	if t.Date.IsZero() {
		t.Date = pc.scope.current.Date
	}

	pc.ensureAccount(t.Account)
	return nil
}

// parseObjectList consumes an optional '{ dim obj ... }' field sequence
// starting at idx and returns the references plus the index after the
// closing brace.
func parseObjectList(ln Line, idx int) ([]document.ObjectRef, int, error) {
	if idx >= len(ln.Fields) || ln.Fields[idx].Kind != FieldOpenBrace {
		return nil, idx, nil
	}
	idx++

	var refs []document.ObjectRef
	for {
		if idx >= len(ln.Fields) {
			return nil, idx, newParseError(ln.Number, "#TRANS: unterminated object list")
		}
		if ln.Fields[idx].Kind == FieldCloseBrace {
			return refs, idx + 1, nil
		}
		if idx+1 >= len(ln.Fields) || ln.Fields[idx+1].Kind != FieldText {
			return nil, idx, newParseError(ln.Number, "#TRANS: dimension %q without object id", ln.Text(idx))
		}
		refs = append(refs, document.ObjectRef{
			Dimension: ln.Text(idx),
			Object:    ln.Text(idx + 1),
		})
		idx += 2
	}
}

// parseDecimal parses a SIE amount. Amounts may use a comma as the decimal
// separator.
func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}
