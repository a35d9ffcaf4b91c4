package ofx_test

import (
	"bytes"
	"strings"
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/ledgerkit/ofx"
)

const bankStatementSoup = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1><SONRS>
	<STATUS><CODE>0<SEVERITY>INFO</STATUS>
	<DTSERVER>20190923042445<LANGUAGE>ENG
	<FI><ORG>Test Bank</ORG><FID>123</FID></FI>
</SONRS></SIGNONMSGSRSV1>
<BANKMSGSRSV1><STMTTRNRS>
	<TRNUID>0
	<STATUS><CODE>0<SEVERITY>INFO</STATUS>
	<STMTRS>
		<CURDEF>USD
		<BANKACCTFROM><BANKID>456<ACCTID>789<ACCTTYPE>CREDITLINE</BANKACCTFROM>
		<BANKTRANLIST>
			<DTSTART>20190101120000.000[0:GMT]<DTEND>20190131120000.000[0:GMT]
			<STMTTRN><TRNTYPE>DEBIT<DTPOSTED>20190119090000<TRNAMT>-20.96<FITID>20190119090001<SIC>5912<NAME>Corner Pharmacy</STMTTRN>
			<STMTTRN><TRNTYPE>CHECK<DTPOSTED>20190122090000<TRNAMT>-115.26<FITID>20190122090002<CHECKNUM>1044<NAME>Sample Payee<MEMO>POS MERCHANDISE;MCDONALD'S #112</STMTTRN>
		</BANKTRANLIST>
		<LEDGERBAL>
			<BALAMT>315.50<DTASOF>20190131120000.000[0:GMT]
		</LEDGERBAL>
		<AVAILBAL>
			<BALAMT>229,40<DTASOF>20190131120000.000[0:GMT]
		</AVAILBAL>
	</STMTRS>
</STMTTRNRS></BANKMSGSRSV1>
</OFX>
`

const multiAccountSoup = `<OFX>
<SIGNONMSGSRSV1><SONRS>
	<STATUS><CODE>0<SEVERITY>INFO</STATUS>
	<FI><ORG>Test Bank</ORG><FID>321</FID></FI>
</SONRS></SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
	<STMTRS>
		<CURDEF>USD
		<BANKACCTFROM><BANKID>123<ACCTID>9100<ACCTTYPE>CHECKING</BANKACCTFROM>
		<BANKTRANLIST><DTSTART>20190101<DTEND>20190131</BANKTRANLIST>
	</STMTRS>
</STMTTRNRS>
<STMTTRNRS>
	<STMTRS>
		<CURDEF>USD
		<BANKACCTFROM><BANKID>123<ACCTID>9200<ACCTTYPE>SAVINGS</BANKACCTFROM>
		<BANKTRANLIST><DTSTART>20190101<DTEND>20190131</BANKTRANLIST>
	</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`

const badTransactionsDoc = `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS>
<CURDEF>USD</CURDEF>
<BANKACCTFROM><BANKID>1</BANKID><ACCTID>2</ACCTID><ACCTTYPE>CHECKING</ACCTTYPE></BANKACCTFROM>
<BANKTRANLIST>
<STMTTRN><TRNTYPE>DEBIT</TRNTYPE><TRNAMT>-1.00</TRNAMT><FITID>a</FITID></STMTTRN>
<STMTTRN><TRNTYPE>DEBIT</TRNTYPE><DTPOSTED></DTPOSTED><TRNAMT>-2.00</TRNAMT><FITID>b</FITID></STMTTRN>
<STMTTRN><TRNTYPE>DEBIT</TRNTYPE><DTPOSTED>garbage</DTPOSTED><TRNAMT>-3.00</TRNAMT><FITID>c</FITID></STMTTRN>
</BANKTRANLIST>
</STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`

var _ = Describe("ofx", func() {
	Describe("Parse()", func() {
		Context("when given a non-seekable input", func() {
			It("should reject it before parsing", func() {
				d, err := ofx.Parse(bytes.NewBufferString("<OFX></OFX>"))
				Expect(d).To(BeNil())
				unsupported := &ofx.UnsupportedInputError{}
				Expect(err).To(BeAssignableToTypeOf(unsupported))
			})
		})
		Context("when given input with no markup at all", func() {
			It("should return a structural error", func() {
				d, err := ofx.Parse(strings.NewReader("OFXHEADER:100\r\n\r\nnothing here"))
				Expect(d).To(BeNil())
				structural := &ofx.StructuralError{}
				Expect(err).To(BeAssignableToTypeOf(structural))
			})
		})
		Context("when the document has no statement containers", func() {
			It("should return a structural error", func() {
				data := "<OFX><SIGNONMSGSRSV1><SONRS><STATUS><CODE>0</CODE></STATUS></SONRS></SIGNONMSGSRSV1></OFX>"
				d, err := ofx.Parse(strings.NewReader(data))
				Expect(d).To(BeNil())
				structural := &ofx.StructuralError{}
				Expect(err).To(BeAssignableToTypeOf(structural))
				Expect(err.Error()).To(ContainSubstring("no recognizable statement containers"))
			})
		})
		Context("when given a full bank statement", func() {
			var document *ofx.Document

			BeforeEach(func() {
				var err error
				document, err = ofx.Parse(strings.NewReader(bankStatementSoup))
				Expect(err).To(BeNil())
				Expect(document).ToNot(BeNil())
			})
			It("should keep the raw headers", func() {
				Expect(document.Headers.Get("VERSION")).To(Equal("102"))
				security, present := document.Headers.Lookup("SECURITY")
				Expect(present).To(BeTrue())
				Expect(security).To(BeNil())
			})
			It("should parse the sign-on response", func() {
				Expect(document.SignOn).ToNot(BeNil())
				Expect(document.SignOn.Code).To(Equal(0))
				Expect(document.SignOn.Success()).To(BeTrue())
				Expect(document.SignOn.Severity).To(Equal(ofx.SeverityInfo))
				Expect(document.SignOn.Language).To(Equal("ENG"))
				Expect(document.SignOn.Date).ToNot(BeNil())
				Expect(*document.SignOn.Date).To(BeTemporally("==", time.Date(2019, 9, 23, 4, 24, 45, 0, time.UTC)))
			})
			It("should expose the primary account", func() {
				Expect(document.Accounts).To(HaveLen(1))
				account := document.Account()
				Expect(account).To(BeIdenticalTo(document.Accounts[0]))
				Expect(account.Kind).To(Equal(ofx.AccountBank))
				Expect(account.ID).To(Equal("789"))
				Expect(account.RoutingNumber).To(Equal("456"))
				Expect(account.Type).To(Equal("CREDITLINE"))
				Expect(account.Currency).To(Equal("USD"))
				Expect(account.Institution).ToNot(BeNil())
				Expect(account.Institution.Org).To(Equal("Test Bank"))
				Expect(account.Institution.FID).To(Equal("123"))
			})
			It("should parse the statement date range and balances", func() {
				statement := document.Account().Statement
				Expect(statement).ToNot(BeNil())
				Expect(*statement.StartDate).To(BeTemporally("==", time.Date(2019, 1, 1, 12, 0, 0, 0, time.UTC)))
				Expect(*statement.EndDate).To(BeTemporally("==", time.Date(2019, 1, 31, 12, 0, 0, 0, time.UTC)))
				Expect(statement.Balance.Equal(decimal.RequireFromString("315.50"))).To(BeTrue())
				Expect(statement.BalanceDate).ToNot(BeNil())
				Expect(statement.AvailableBalance.Equal(decimal.RequireFromString("229.40"))).To(BeTrue())
				Expect(statement.Warnings).To(BeEmpty())
			})
			It("should parse every transaction with normalized fields", func() {
				txns := document.Account().Statement.Transactions
				Expect(txns).To(HaveLen(2))

				Expect(txns[0].Type).To(Equal("debit"))
				Expect(*txns[0].Date).To(BeTemporally("==", time.Date(2019, 1, 19, 9, 0, 0, 0, time.UTC)))
				Expect(txns[0].Amount.Equal(decimal.RequireFromString("-20.96"))).To(BeTrue())
				Expect(txns[0].ID).To(Equal("20190119090001"))
				Expect(txns[0].Payee).To(Equal("Corner Pharmacy"))
				Expect(txns[0].SIC).To(Equal("5912"))
				Expect(txns[0].MCCDescription).To(Equal("Drug Stores and Pharmacies"))

				Expect(txns[1].Type).To(Equal("check"))
				Expect(txns[1].CheckNum).To(Equal("1044"))
				Expect(txns[1].Memo).To(Equal("POS MERCHANDISE;MCDONALD'S #112"))
				Expect(txns[1].MCCDescription).To(Equal(""))
			})
			It("should build distinct dedup keys per transaction", func() {
				txns := document.Account().Statement.Transactions
				Expect(txns[0].DedupKey(10)).ToNot(Equal(txns[1].DedupKey(10)))
				Expect(txns[0].DedupKey(10)).To(ContainSubstring("2019011909"))
			})
		})
		Context("when the document has multiple statement containers", func() {
			It("should aggregate one account per container", func() {
				document, err := ofx.Parse(strings.NewReader(multiAccountSoup))
				Expect(err).To(BeNil())
				Expect(document.Accounts).To(HaveLen(2))
				Expect(document.Accounts[0].ID).To(Equal("9100"))
				Expect(document.Accounts[0].Type).To(Equal("CHECKING"))
				Expect(document.Accounts[1].ID).To(Equal("9200"))
				Expect(document.Accounts[1].Type).To(Equal("SAVINGS"))
				Expect(document.Accounts[0].RoutingNumber).To(Equal("123"))
				Expect(document.Accounts[1].RoutingNumber).To(Equal("123"))
			})
			It("should share one institution across the accounts", func() {
				document, err := ofx.Parse(strings.NewReader(multiAccountSoup))
				Expect(err).To(BeNil())
				Expect(document.Accounts[0].Institution).To(BeIdenticalTo(document.Accounts[1].Institution))
			})
		})
		Context("when transactions are missing required fields", func() {
			It("should discard all of them in best-effort mode and keep parsing", func() {
				parser := ofx.NewParser(ofx.WithFailFast(false))
				document, err := parser.Parse(strings.NewReader(badTransactionsDoc))
				Expect(err).To(BeNil())
				statement := document.Account().Statement
				Expect(statement.Transactions).To(HaveLen(0))
				Expect(statement.Discarded).To(HaveLen(3))
				Expect(statement.Discarded[0].Reason).To(ContainSubstring("dtposted"))
				Expect(statement.Discarded[0].Node.Find("fitid").Text).To(Equal("a"))
			})
			It("should fail on the first offending transaction under fail-fast", func() {
				document, err := ofx.Parse(strings.NewReader(badTransactionsDoc))
				Expect(document).To(BeNil())
				extraction := &ofx.ExtractionError{}
				Expect(err).To(BeAssignableToTypeOf(extraction))
				Expect(err.Error()).To(ContainSubstring("dtposted"))
			})
		})
		Context("when an optional field is present but empty", func() {
			data := `<OFX><BANKMSGSRSV1><STMTTRNRS><STMTRS>
<BANKACCTFROM><ACCTID>2</ACCTID></BANKACCTFROM>
<BANKTRANLIST><DTSTART></DTSTART></BANKTRANLIST>
</STMTRS></STMTTRNRS></BANKMSGSRSV1></OFX>`

			It("should promote the warning to a fatal error under fail-fast", func() {
				document, err := ofx.Parse(strings.NewReader(data))
				Expect(document).To(BeNil())
				warning := &ofx.FieldWarning{}
				Expect(err).To(BeAssignableToTypeOf(warning))
				Expect(err.Error()).To(ContainSubstring("dtstart"))
			})
			It("should record a warning and continue in best-effort mode", func() {
				parser := ofx.NewParser(ofx.WithFailFast(false))
				document, err := parser.Parse(strings.NewReader(data))
				Expect(err).To(BeNil())
				statement := document.Account().Statement
				Expect(statement.StartDate).To(BeNil())
				Expect(statement.Warnings).To(HaveLen(1))
				Expect(statement.Warnings[0]).To(ContainSubstring("dtstart"))
			})
		})
		Context("when the document is an account information listing", func() {
			data := `<OFX><SIGNUPMSGSRSV1><ACCTINFOTRNRS><ACCTINFORS>
<ACCTINFO><DESC>Everyday checking</DESC><BANKACCTINFO><BANKACCTFROM><BANKID>11<ACCTID>22<ACCTTYPE>CHECKING</BANKACCTFROM></BANKACCTINFO></ACCTINFO>
<ACCTINFO><DESC>Rewards card</DESC><CCACCTINFO><CCACCTFROM><ACCTID>33</CCACCTFROM></CCACCTINFO></ACCTINFO>
<ACCTINFO><DESC>Brokerage</DESC><INVACCTINFO><INVACCTFROM><BROKERID>broker.example.com<ACCTID>44</INVACCTFROM></INVACCTINFO></ACCTINFO>
</ACCTINFORS></ACCTINFOTRNRS></SIGNUPMSGSRSV1></OFX>`

			It("should dispatch each entry to the right account kind", func() {
				document, err := ofx.Parse(strings.NewReader(data))
				Expect(err).To(BeNil())
				Expect(document.Accounts).To(HaveLen(3))

				Expect(document.Accounts[0].Kind).To(Equal(ofx.AccountBank))
				Expect(document.Accounts[0].ID).To(Equal("22"))
				Expect(document.Accounts[0].RoutingNumber).To(Equal("11"))
				Expect(document.Accounts[0].Type).To(Equal("CHECKING"))
				Expect(document.Accounts[0].Description).To(Equal("Everyday checking"))

				Expect(document.Accounts[1].Kind).To(Equal(ofx.AccountCreditCard))
				Expect(document.Accounts[1].ID).To(Equal("33"))
				Expect(document.Accounts[1].Description).To(Equal("Rewards card"))

				Expect(document.Accounts[2].Kind).To(Equal(ofx.AccountInvestment))
				Expect(document.Accounts[2].ID).To(Equal("44"))
				Expect(document.Accounts[2].BrokerID).To(Equal("broker.example.com"))
			})
		})
	})
})
