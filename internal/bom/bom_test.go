package bom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDesignators(t *testing.T) {
	assert.Equal(t, []string{"R1", "R2", "R3"}, SplitDesignators("R1, R2 ,R3"))
	assert.Equal(t, []string{"R1", "R2"}, SplitDesignators("R1,,R2,"))
	assert.Nil(t, SplitDesignators(""))
	assert.Nil(t, SplitDesignators(" , "))
}

func TestRowFieldRoundTrip(t *testing.T) {
	row := Row{}
	for _, label := range RowLabels() {
		row = row.WithField(label, "v:"+label)
	}
	for _, label := range RowLabels() {
		assert.Equal(t, "v:"+label, row.Field(label), label)
	}
	assert.Equal(t, "", row.Field("No Such Column"))
	assert.Equal(t, row, row.WithField("No Such Column", "x"))
}

func TestHeaderFieldRoundTrip(t *testing.T) {
	header := Header{}
	for _, label := range HeaderLabels() {
		header = header.WithField(label, "v:"+label)
	}
	for _, label := range HeaderLabels() {
		assert.Equal(t, "v:"+label, header.Field(label), label)
	}
	assert.Equal(t, "", header.Field("No Such Label"))
}

func TestWithFieldDoesNotMutate(t *testing.T) {
	original := Row{Designator: "R1"}
	changed := original.WithField(LabelDesignator, "R1,R2")

	assert.Equal(t, "R1", original.Designator)
	assert.Equal(t, "R1,R2", changed.Designator)
}

func TestTemplateIdentifiers(t *testing.T) {
	assert.Equal(t,
		[]string{LabelClassification, LabelDesignator, LabelMfgName, LabelMfgPartNumber},
		TemplateIdentifiers())
}
