package vcf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_KnownVariantIDs(t *testing.T) {
	f, err := os.Open(findTestFile(t, "multi_gene.vcf"))
	require.NoError(t, err)
	defer f.Close()

	extraction, err := NewExtractor().Extract(f)
	require.NoError(t, err)

	// 6 data rows: 4 known rs IDs, 1 short row, 1 irrelevant variant.
	assert.Equal(t, 6, extraction.TotalRecords)
	assert.Equal(t, 4, extraction.RelevantCount)
	require.Len(t, extraction.Records, 4)

	// First-seen gene order follows input order.
	assert.Equal(t, []string{"CYP2D6", "CYP2C19", "SLCO1B1", "CYP2C9"}, extraction.Genes)

	first := extraction.Records[0]
	assert.Equal(t, "rs3892097", first.ID)
	assert.Equal(t, "CYP2D6", first.Gene)
	assert.Equal(t, "*4", first.StarAllele)
	assert.Equal(t, ZygosityHeterozygous, first.Zygosity)
}

func TestExtractor_ExplicitInfoTags(t *testing.T) {
	input := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"22\t42524947\tcustom1\tC\tT\t99\tPASS\tGENE=CYP2D6;STAR=*41\n"

	extraction, err := NewExtractor().Extract(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, extraction.Records, 1)
	assert.Equal(t, "CYP2D6", extraction.Records[0].Gene)
	assert.Equal(t, "*41", extraction.Records[0].StarAllele)
}

func TestExtractor_InfoTagsWinOverKnownID(t *testing.T) {
	// rs3892097 would resolve to *4, but explicit tags take precedence.
	input := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"22\t42524947\trs3892097\tC\tT\t99\tPASS\tGENE=CYP2D6;STAR=*10\n"

	extraction, err := NewExtractor().Extract(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, extraction.Records, 1)
	assert.Equal(t, "*10", extraction.Records[0].StarAllele)
}

func TestExtractor_AlleleTagAlias(t *testing.T) {
	input := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"10\t94781859\tcustom2\tG\tA\t87\tPASS\tGENE=CYP2C19;ALLELE=*2\n"

	extraction, err := NewExtractor().Extract(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, extraction.Records, 1)
	assert.Equal(t, "*2", extraction.Records[0].StarAllele)
}

func TestExtractor_SupportedGeneWithoutAllele(t *testing.T) {
	input := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"22\t42524000\tnovel1\tG\tA\t80\tPASS\tGENE=CYP2D6\n" +
		"3\t1234567\tnovel2\tG\tA\t80\tPASS\tGENE=NOTAGENE\n"

	extraction, err := NewExtractor().Extract(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, extraction.Records, 1)
	assert.Equal(t, "CYP2D6", extraction.Records[0].Gene)
	assert.Empty(t, extraction.Records[0].StarAllele)
}

func TestExtractor_ShortRowsSkippedSilently(t *testing.T) {
	input := "##fileformat=VCFv4.2\n" +
		"#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\n" +
		"1\t1000\tbad\n" +
		"22\t42524947\trs3892097\tC\tT\t99\tPASS\tDP=40\n"

	extraction, err := NewExtractor().Extract(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, extraction.TotalRecords)
	assert.Equal(t, 1, extraction.RelevantCount)
}

func TestGroupByGene(t *testing.T) {
	records := []*Record{
		{ID: "a", Gene: "CYP2D6"},
		{ID: "b", Gene: "TPMT"},
		{ID: "c", Gene: "CYP2D6"},
	}

	groups := GroupByGene(records)
	require.Len(t, groups, 2)
	require.Len(t, groups["CYP2D6"], 2)
	assert.Equal(t, "a", groups["CYP2D6"][0].ID)
	assert.Equal(t, "c", groups["CYP2D6"][1].ID)
	assert.Len(t, groups["TPMT"], 1)
}

// findTestFile locates a test file in the testdata directory.
func findTestFile(t *testing.T, name string) string {
	t.Helper()

	paths := []string{
		filepath.Join("testdata", name),
		filepath.Join("..", "..", "testdata", name),
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	t.Fatalf("Test file not found: %s", name)
	return ""
}
