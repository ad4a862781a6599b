package ratesheet

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/ncc-uat/ncc-admin-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRates(t *testing.T) {
	in := "Country,Call to Ethiopia,Call to Local,Call to Other Countries,Receiving Call,Data (MB),Sending SMS,Receiving SMS\n" +
		"Kenya, 36,16,46,10,2.1,1.1,0.5\n" +
		"Uganda,32,13,42,8.5,1.7,0.9,0.5\n"

	rows, err := ParseRates(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, models.RoamingRateRow{Country: "Kenya", CallToEthiopia: 36, CallToLocal: 16, CallToOther: 46, ReceivingCall: 10, DataMb: 2.1, SendingSms: 1.1, ReceivingSms: 0.5}, rows[0])
	assert.Equal(t, 8.5, rows[1].ReceivingCall)
}

func TestParseRatesErrors(t *testing.T) {
	header := strings.Join(RatesHeader, ",") + "\n"

	_, err := ParseRates(strings.NewReader(header))
	assert.ErrorIs(t, err, ErrEmptySheet)

	_, err = ParseRates(strings.NewReader(header + "Kenya,abc,1,1,1,1,1,1\n"))
	assert.ErrorContains(t, err, "Call to Ethiopia")

	_, err = ParseRates(strings.NewReader(header + "Kenya,NaN,1,1,1,1,1,1\n"))
	assert.ErrorContains(t, err, "Call to Ethiopia")

	_, err = ParseRates(strings.NewReader(header + "Kenya,1,1,1,1,Inf,1,1\n"))
	assert.ErrorContains(t, err, "Data (MB)")

	_, err = ParseRates(strings.NewReader(header + "Kenya,1,1\n"))
	assert.Error(t, err, "short rows are rejected")

	_, err = ParseRates(strings.NewReader(header + ",1,1,1,1,1,1,1\n"))
	assert.ErrorContains(t, err, "country")
}

func TestWriteRates(t *testing.T) {
	var buf bytes.Buffer
	err := WriteRates(&buf, []models.RoamingRateRow{
		{Country: "Kenya", CallToEthiopia: 36, CallToLocal: 16, CallToOther: 46, ReceivingCall: 10, DataMb: 2.1, SendingSms: 1.1, ReceivingSms: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t,
		"Country,Call to Ethiopia,Call to Local,Call to Other Countries,Receiving Call,Data (MB),Sending SMS,Receiving SMS\n"+
			"Kenya,36,16,46,10,2.1,1.1,0.5\n",
		buf.String())
}

func TestMappingRoundTrip(t *testing.T) {
	rows := []models.MappingRow{
		{TariffPlanKey: "ROAM_STANDARD", CallTypeKey: "VOICE", OriginationTypeKey: "ROAMING", DestinationTypeKey: "ETH", PeakKey: "PEAK", RateIDValue: "RATE001"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteMapping(&buf, rows))
	assert.True(t, strings.HasPrefix(buf.String(), "TariffPlan::key,Call_Type::key"))

	parsed, err := ParseMapping(&buf)
	require.NoError(t, err)
	assert.Equal(t, rows, parsed)
}

func TestWriteRateIDArchive(t *testing.T) {
	rows := []models.MappingRow{
		{TariffPlanKey: "ROAM_STANDARD", RateIDValue: "RATE001"},
		{TariffPlanKey: "ROAM_STANDARD", RateIDValue: "RATE002"},
		{TariffPlanKey: "ROAM_PLUS", RateIDValue: "RATE100"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteRateIDArchive(&buf, rows))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	files := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		files[f.Name] = string(b)
	}
	assert.Contains(t, files, "mapping_table.csv")
	assert.Equal(t, "RATE001\nRATE002\n", files["rate_ids/ROAM_STANDARD.txt"])
	assert.Equal(t, "RATE100\n", files["rate_ids/ROAM_PLUS.txt"])
}
