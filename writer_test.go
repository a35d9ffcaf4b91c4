package ofx_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ledgerkit/ofx"
)

var _ = Describe("Writer", func() {
	Context("when re-emitting a parsed bank statement", func() {
		var (
			original *ofx.Document
			reparsed *ofx.Document
			rendered string
		)

		BeforeEach(func() {
			var err error
			original, err = ofx.Parse(strings.NewReader(bankStatementSoup))
			Expect(err).To(BeNil())

			var buff bytes.Buffer
			Expect(ofx.NewWriter(original).Write(&buff)).To(BeNil())
			rendered = buff.String()

			reparsed, err = ofx.Parse(strings.NewReader(rendered))
			Expect(err).To(BeNil())
		})
		It("should render the original headers verbatim", func() {
			Expect(rendered).To(HavePrefix("OFXHEADER:100\r\n"))
			Expect(rendered).To(ContainSubstring("SECURITY:NONE\r\n"))
			Expect(reparsed.Headers.Get("VERSION")).To(Equal("102"))
		})
		It("should survive a round trip through its own output", func() {
			Expect(reparsed.SignOn.Code).To(Equal(original.SignOn.Code))
			Expect(reparsed.SignOn.Org).To(Equal(original.SignOn.Org))
			Expect(reparsed.SignOn.FID).To(Equal(original.SignOn.FID))
			Expect(reparsed.Accounts).To(HaveLen(len(original.Accounts)))

			before, after := original.Account().Statement, reparsed.Account().Statement
			Expect(*after.StartDate).To(BeTemporally("==", *before.StartDate))
			Expect(*after.EndDate).To(BeTemporally("==", *before.EndDate))
			Expect(after.Balance.Equal(before.Balance)).To(BeTrue())
			Expect(after.AvailableBalance.Equal(before.AvailableBalance)).To(BeTrue())
			Expect(after.Transactions).To(HaveLen(len(before.Transactions)))
		})
		It("should preserve every transaction field", func() {
			before := original.Account().Statement.Transactions
			after := reparsed.Account().Statement.Transactions
			for i := range before {
				Expect(after[i].Type).To(Equal(before[i].Type))
				Expect(*after[i].Date).To(BeTemporally("==", *before[i].Date))
				Expect(after[i].Amount.Equal(before[i].Amount)).To(BeTrue())
				Expect(after[i].ID).To(Equal(before[i].ID))
				Expect(after[i].Payee).To(Equal(before[i].Payee))
				Expect(after[i].Memo).To(Equal(before[i].Memo))
				Expect(after[i].CheckNum).To(Equal(before[i].CheckNum))
				Expect(after[i].SIC).To(Equal(before[i].SIC))
				Expect(after[i].MCCDescription).To(Equal(before[i].MCCDescription))
			}
		})
		It("should write leaf tags SGML style", func() {
			Expect(rendered).To(ContainSubstring("<TRNTYPE>DEBIT\r\n"))
			Expect(rendered).ToNot(ContainSubstring("</TRNTYPE>"))
			Expect(rendered).To(ContainSubstring("</STMTTRN>"))
		})
		It("should escape markup in text values", func() {
			Expect(rendered).To(ContainSubstring("MCDONALD&#39;S"))
		})
	})

	Context("when the statement carries no balances", func() {
		data := `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS>
<CURDEF>USD</CURDEF>
<BANKACCTFROM><BANKID>1</BANKID><ACCTID>2</ACCTID><ACCTTYPE>CHECKING</ACCTTYPE></BANKACCTFROM>
<BANKTRANLIST><DTSTART>20190101</DTSTART><DTEND>20190131</DTEND></BANKTRANLIST>
</STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`

		It("should omit the balance containers", func() {
			document, err := ofx.Parse(strings.NewReader(data))
			Expect(err).To(BeNil())

			var buff bytes.Buffer
			Expect(ofx.NewWriter(document).Write(&buff)).To(BeNil())
			Expect(buff.String()).ToNot(ContainSubstring("<LEDGERBAL>"))
			Expect(buff.String()).ToNot(ContainSubstring("<AVAILBAL>"))
		})
	})

	Context("when the document holds only investment accounts", func() {
		It("should emit no bank message set", func() {
			document, err := ofx.Parse(strings.NewReader(investmentStatementSoup))
			Expect(err).To(BeNil())

			var buff bytes.Buffer
			Expect(ofx.NewWriter(document).Write(&buff)).To(BeNil())
			Expect(buff.String()).ToNot(ContainSubstring("<BANKMSGSRSV1>"))
			Expect(buff.String()).To(ContainSubstring("<SIGNONMSGSRSV1>"))
		})
	})
})
