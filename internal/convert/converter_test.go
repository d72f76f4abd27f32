package convert

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmyport-dev/kmyport/internal/amount"
)

const sampleDoc = `<?xml version="1.0" encoding="utf-8"?>
<KMYMONEY-FILE>
 <FILEINFO>
  <CREATION_DATE date="2024-03-01"/>
  <LAST_MODIFIED_DATE date="2024-06-30"/>
 </FILEINFO>
 <USER email="sam@example.com" name="Sam">
  <ADDRESS city="Lyon" street="12 Rue Neuve"/>
 </USER>
 <INSTITUTIONS>
  <INSTITUTION id="I000001" name="First Bank"/>
 </INSTITUTIONS>
 <PAYEES>
  <PAYEE id="P000001" name="Corner Grocer">
   <ADDRESS street="3 Market Way"/>
  </PAYEE>
 </PAYEES>
 <TAGS>
  <TAG id="G000001" name="household"/>
 </TAGS>
 <ACCOUNTS>
  <ACCOUNT id="A000001" name="Asset" type="9"/>
  <ACCOUNT id="A000002" name="Checking" parentaccount="A000001" currency="EUR"/>
  <ACCOUNT id="A000003" name="Expense" type="13"/>
  <ACCOUNT id="A000004" name="Groceries" parentaccount="A000003"/>
 </ACCOUNTS>
 <TRANSACTIONS>
  <TRANSACTION id="T000000000000000001" postdate="2024-05-04" commodity="EUR">
   <SPLITS>
    <SPLIT account="A000004" value="2185/100" memo="weekly shop" payee="P000001"/>
    <SPLIT account="A000002" value="-2185/100" payee="P000001"/>
   </SPLITS>
  </TRANSACTION>
  <TRANSACTION id="T000000000000000002" postdate="2024-05-05" commodity="EUR">
   <SPLITS/>
  </TRANSACTION>
 </TRANSACTIONS>
</KMYMONEY-FILE>`

func TestConverterRun(t *testing.T) {
	doc := parseDoc(t, sampleDoc)
	var buf bytes.Buffer
	c := New(doc, &buf, Options{})

	require.NoError(t, c.Run())
	out := buf.String()

	// Metadata comment blocks.
	assert.Contains(t, out, "; FILEINFO\n;   creation_date date: 2024-03-01\n")
	assert.Contains(t, out, "; USER\n")
	assert.Contains(t, out, ";   address city: Lyon\n")
	assert.Contains(t, out, "; INSTITUTION I000001\n;   id: I000001\n;   name: First Bank\n")
	assert.Contains(t, out, "; PAYEE P000001\n")
	assert.Contains(t, out, ";   address street: 3 Market Way\n")
	assert.Contains(t, out, "; TAG G000001\n")

	// Account declarations, normalized path plus display-cased comment.
	assert.Contains(t, out, "account asset  ; Asset\n")
	assert.Contains(t, out, "account asset:checking  ; Asset:Checking\n")
	assert.Contains(t, out, "account expense:groceries  ; Expense:Groceries\n")
	assert.Contains(t, out, "  ; currency: EUR\n")

	// Transaction block: header from the first split, postings in source
	// order, date rewritten to slashes.
	assert.Contains(t, out,
		"\n2024/05/04 (T000000000000000001) Corner Grocer | weekly shop\n"+
			"  expense:groceries  EUR 21.85 ; Corner Grocer | weekly shop\n"+
			"  asset:checking  EUR -21.85 ; Corner Grocer | \n")

	// The split-less transaction contributes only its separator line.
	assert.NotContains(t, out, "T000000000000000002")
}

func TestConverterStats(t *testing.T) {
	doc := parseDoc(t, sampleDoc)
	c := New(doc, &bytes.Buffer{}, Options{})

	s := c.Stats()
	assert.Equal(t, 4, s.Accounts)
	assert.Equal(t, 1, s.Payees)
	assert.Equal(t, 1, s.Institutions)
	assert.Equal(t, 2, s.Transactions)
	assert.Equal(t, 0, s.Reports)
}

func TestConverterEndToEndMinimal(t *testing.T) {
	doc := parseDoc(t, `<KMYMONEY-FILE>
 <ACCOUNTS>
  <ACCOUNT id="A1" name="Asset"/>
  <ACCOUNT id="A2" name="Checking" parentaccount="A1"/>
 </ACCOUNTS>
 <TRANSACTIONS>
  <TRANSACTION id="T1" postdate="2024-01-02" commodity="USD">
   <SPLITS>
    <SPLIT account="A2" value="100/1"/>
   </SPLITS>
  </TRANSACTION>
 </TRANSACTIONS>
</KMYMONEY-FILE>`)
	var buf bytes.Buffer
	require.NoError(t, New(doc, &buf, Options{}).Run())

	out := buf.String()
	assert.Contains(t, out, "account asset:checking  ; Asset:Checking\n")
	assert.Contains(t, out, "  asset:checking  USD 100.00 ; ")
}

func TestConverterMalformedAmountStopsDocument(t *testing.T) {
	doc := parseDoc(t, `<KMYMONEY-FILE>
 <ACCOUNTS>
  <ACCOUNT id="A1" name="Asset"/>
 </ACCOUNTS>
 <TRANSACTIONS>
  <TRANSACTION id="T1" postdate="2024-01-02" commodity="USD">
   <SPLITS>
    <SPLIT account="A1" value="12x"/>
   </SPLITS>
  </TRANSACTION>
 </TRANSACTIONS>
</KMYMONEY-FILE>`)
	var buf bytes.Buffer
	err := New(doc, &buf, Options{}).Run()
	require.Error(t, err)

	var merr *amount.MalformedExpressionError
	assert.ErrorAs(t, err, &merr)
	assert.ErrorContains(t, err, "transaction T1")

	// Output written before the failure is kept.
	assert.Contains(t, buf.String(), "account asset  ; Asset\n")
}

func TestConverterSplitWithDanglingAccount(t *testing.T) {
	doc := parseDoc(t, `<KMYMONEY-FILE>
 <TRANSACTIONS>
  <TRANSACTION id="T1" postdate="2024-01-02" commodity="USD">
   <SPLITS>
    <SPLIT account="A404" value="5/1"/>
   </SPLITS>
  </TRANSACTION>
 </TRANSACTIONS>
</KMYMONEY-FILE>`)
	var buf bytes.Buffer
	require.NoError(t, New(doc, &buf, Options{}).Run())

	// Dangling account reference emits an empty path, not an error.
	assert.Contains(t, buf.String(), "    USD 5.00 ; ")
}

func TestConverterMissingSectionsSkipped(t *testing.T) {
	doc := parseDoc(t, `<KMYMONEY-FILE></KMYMONEY-FILE>`)
	var buf bytes.Buffer
	require.NoError(t, New(doc, &buf, Options{}).Run())
	assert.Empty(t, buf.String())
}
