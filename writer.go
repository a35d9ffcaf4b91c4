package ofx

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Writer re-emits a parsed document as a minimal OFX file in the same tag
// vocabulary the extractor consumes: headers, sign-on and bank statement
// data. Leaf tags are written SGML style, without closing tags, the way
// institutions themselves emit them. Investment statements are not
// serialized.
type Writer struct {
	doc *Document
}

// NewWriter returns a Writer for the given document.
func NewWriter(doc *Document) *Writer {
	return &Writer{doc: doc}
}

// Write renders the document to out.
func (w *Writer) Write(out io.Writer) error {
	var buff bytes.Buffer
	w.writeHeaders(&buff)
	buff.WriteString("<OFX>\r\n")
	w.writeSignOn(&buff)
	w.writeBankMessages(&buff)
	buff.WriteString("</OFX>\r\n")
	_, err := out.Write(buff.Bytes())
	return err
}

func (w *Writer) writeHeaders(buff *bytes.Buffer) {
	for _, key := range w.doc.Headers.Keys() {
		value, _ := w.doc.Headers.Lookup(key)
		if value == nil {
			fmt.Fprintf(buff, "%s:NONE\r\n", key)
			continue
		}
		fmt.Fprintf(buff, "%s:%s\r\n", key, *value)
	}
	buff.WriteString("\r\n")
}

func (w *Writer) writeSignOn(buff *bytes.Buffer) {
	signOn := w.doc.SignOn
	if signOn == nil {
		return
	}
	buff.WriteString("\t<SIGNONMSGSRSV1>\r\n\t\t<SONRS>\r\n")
	buff.WriteString("\t\t\t<STATUS>\r\n")
	fmt.Fprintf(buff, "\t\t\t\t<CODE>%d\r\n", signOn.Code)
	if signOn.Severity != "" {
		fmt.Fprintf(buff, "\t\t\t\t<SEVERITY>%s\r\n", signOn.Severity)
	}
	if signOn.Message != "" {
		fmt.Fprintf(buff, "\t\t\t\t<MESSAGE>%s\r\n", escapeString(signOn.Message))
	}
	buff.WriteString("\t\t\t</STATUS>\r\n")
	if signOn.Date != nil {
		fmt.Fprintf(buff, "\t\t\t<DTSERVER>%s\r\n", formatDate(*signOn.Date))
	}
	if signOn.Language != "" {
		fmt.Fprintf(buff, "\t\t\t<LANGUAGE>%s\r\n", signOn.Language)
	}
	if signOn.Org != "" || signOn.FID != "" {
		buff.WriteString("\t\t\t<FI>\r\n")
		if signOn.Org != "" {
			fmt.Fprintf(buff, "\t\t\t\t<ORG>%s\r\n", escapeString(signOn.Org))
		}
		if signOn.FID != "" {
			fmt.Fprintf(buff, "\t\t\t\t<FID>%s\r\n", signOn.FID)
		}
		buff.WriteString("\t\t\t</FI>\r\n")
	}
	buff.WriteString("\t\t</SONRS>\r\n\t</SIGNONMSGSRSV1>\r\n")
}

func (w *Writer) writeBankMessages(buff *bytes.Buffer) {
	bank := false
	for _, acct := range w.doc.Accounts {
		if acct.Kind == AccountBank && acct.Statement != nil {
			bank = true
			break
		}
	}
	if !bank {
		return
	}
	buff.WriteString("\t<BANKMSGSRSV1>\r\n\t\t<STMTTRNRS>\r\n")
	buff.WriteString("\t\t\t<TRNUID>0\r\n")
	buff.WriteString("\t\t\t<STATUS>\r\n\t\t\t\t<CODE>0\r\n\t\t\t\t<SEVERITY>INFO\r\n\t\t\t</STATUS>\r\n")
	for _, acct := range w.doc.Accounts {
		if acct.Kind != AccountBank || acct.Statement == nil {
			continue
		}
		w.writeStatement(buff, acct)
	}
	buff.WriteString("\t\t</STMTTRNRS>\r\n\t</BANKMSGSRSV1>\r\n")
}

func (w *Writer) writeStatement(buff *bytes.Buffer, acct *Account) {
	stmt := acct.Statement
	buff.WriteString("\t\t\t<STMTRS>\r\n")
	if acct.Currency != "" {
		fmt.Fprintf(buff, "\t\t\t\t<CURDEF>%s\r\n", acct.Currency)
	}
	if acct.RoutingNumber != "" || acct.ID != "" || acct.Type != "" {
		buff.WriteString("\t\t\t\t<BANKACCTFROM>\r\n")
		if acct.RoutingNumber != "" {
			fmt.Fprintf(buff, "\t\t\t\t\t<BANKID>%s\r\n", acct.RoutingNumber)
		}
		if acct.BranchID != "" {
			fmt.Fprintf(buff, "\t\t\t\t\t<BRANCHID>%s\r\n", acct.BranchID)
		}
		if acct.ID != "" {
			fmt.Fprintf(buff, "\t\t\t\t\t<ACCTID>%s\r\n", acct.ID)
		}
		if acct.Type != "" {
			fmt.Fprintf(buff, "\t\t\t\t\t<ACCTTYPE>%s\r\n", acct.Type)
		}
		buff.WriteString("\t\t\t\t</BANKACCTFROM>\r\n")
	}

	buff.WriteString("\t\t\t\t<BANKTRANLIST>\r\n")
	if stmt.StartDate != nil {
		fmt.Fprintf(buff, "\t\t\t\t\t<DTSTART>%s\r\n", formatDate(*stmt.StartDate))
	}
	if stmt.EndDate != nil {
		fmt.Fprintf(buff, "\t\t\t\t\t<DTEND>%s\r\n", formatDate(*stmt.EndDate))
	}
	for _, txn := range stmt.Transactions {
		w.writeTransaction(buff, txn)
	}
	buff.WriteString("\t\t\t\t</BANKTRANLIST>\r\n")

	w.writeBalance(buff, "LEDGERBAL", stmt.Balance, stmt.BalanceDate)
	w.writeBalance(buff, "AVAILBAL", stmt.AvailableBalance, stmt.AvailableBalanceDate)
	buff.WriteString("\t\t\t</STMTRS>\r\n")
}

func (w *Writer) writeTransaction(buff *bytes.Buffer, txn *Transaction) {
	buff.WriteString("\t\t\t\t\t<STMTTRN>\r\n")
	fmt.Fprintf(buff, "\t\t\t\t\t\t<TRNTYPE>%s\r\n", strings.ToUpper(txn.Type))
	if txn.Date != nil {
		fmt.Fprintf(buff, "\t\t\t\t\t\t<DTPOSTED>%s\r\n", formatDate(*txn.Date))
	}
	fmt.Fprintf(buff, "\t\t\t\t\t\t<TRNAMT>%s\r\n", txn.Amount.StringFixed(2))
	fmt.Fprintf(buff, "\t\t\t\t\t\t<FITID>%s\r\n", txn.ID)
	if txn.CheckNum != "" {
		fmt.Fprintf(buff, "\t\t\t\t\t\t<CHECKNUM>%s\r\n", txn.CheckNum)
	}
	if txn.SIC != "" {
		fmt.Fprintf(buff, "\t\t\t\t\t\t<SIC>%s\r\n", txn.SIC)
	}
	if txn.Payee != "" {
		fmt.Fprintf(buff, "\t\t\t\t\t\t<NAME>%s\r\n", escapeString(txn.Payee))
	}
	if strings.TrimSpace(txn.Memo) != "" {
		fmt.Fprintf(buff, "\t\t\t\t\t\t<MEMO>%s\r\n", escapeString(txn.Memo))
	}
	buff.WriteString("\t\t\t\t\t</STMTTRN>\r\n")
}

func (w *Writer) writeBalance(buff *bytes.Buffer, container string, amount decimal.Decimal, asOf *time.Time) {
	if asOf == nil && amount.IsZero() {
		return
	}
	fmt.Fprintf(buff, "\t\t\t\t<%s>\r\n", container)
	fmt.Fprintf(buff, "\t\t\t\t\t<BALAMT>%s\r\n", amount.StringFixed(2))
	if asOf != nil {
		fmt.Fprintf(buff, "\t\t\t\t\t<DTASOF>%s\r\n", formatDate(*asOf))
	}
	fmt.Fprintf(buff, "\t\t\t\t</%s>\r\n", container)
}
