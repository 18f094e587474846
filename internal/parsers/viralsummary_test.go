// Copyright 2026 The Pathreport Authors
// SPDX-License-Identifier: MIT

package parsers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathreport/internal/dataset"
	"pathreport/internal/parser"
)

var _ parser.Parser = (*ViralSummaryParser)(nil)

const viralFixture = `120 Siphoviridae [Family] — High confidence
	45 Lambdavirus [Genus]
	30 Tequatrovirus [Genus]
64 Myoviridae [Family] — Moderate confidence
	64 Mosigvirus [Genus]
15 Retroviridae [Family] — Low confidence
`

func TestViralSummaryParse(t *testing.T) {
	var b dataset.Bundle
	p := &ViralSummaryParser{}

	err := p.Parse(context.Background(), strings.NewReader(viralFixture), &b)
	require.NoError(t, err)
	require.Len(t, b.Viral, 3)

	sipho := b.Viral[0]
	assert.Equal(t, "Siphoviridae", sipho.Name)
	assert.Equal(t, "High", sipho.Confidence)
	assert.Equal(t, 120, sipho.Count)
	require.Len(t, sipho.Genera, 2)
	assert.Equal(t, dataset.ViralGenus{Name: "Lambdavirus", Count: 45}, sipho.Genera[0])

	assert.Equal(t, "Low", b.Viral[2].Confidence)
	assert.Empty(t, b.Viral[2].Genera)
}

func TestViralSummaryParse_SpaceIndentedGenera(t *testing.T) {
	input := "10 Poxviridae [Family] — High confidence\n    10 Orthopoxvirus [Genus]\n"

	var b dataset.Bundle
	err := (&ViralSummaryParser{}).Parse(context.Background(), strings.NewReader(input), &b)
	require.NoError(t, err)

	require.Len(t, b.Viral, 1)
	require.Len(t, b.Viral[0].Genera, 1)
	assert.Equal(t, "Orthopoxvirus", b.Viral[0].Genera[0].Name)
}

func TestViralSummaryParse_GenusBeforeFamilyIgnored(t *testing.T) {
	input := "\t10 Orphanvirus [Genus]\n10 Poxviridae [Family] — High confidence\n"

	var b dataset.Bundle
	err := (&ViralSummaryParser{}).Parse(context.Background(), strings.NewReader(input), &b)
	require.NoError(t, err)

	require.Len(t, b.Viral, 1)
	assert.Empty(t, b.Viral[0].Genera)
}

func TestViralSummaryParse_UnindentedGenusNotAttached(t *testing.T) {
	// A genus line at column zero does not match the indented pattern.
	input := "10 Poxviridae [Family] — High confidence\n10 Orthopoxvirus [Genus]\n"

	var b dataset.Bundle
	err := (&ViralSummaryParser{}).Parse(context.Background(), strings.NewReader(input), &b)
	require.NoError(t, err)

	require.Len(t, b.Viral, 1)
	assert.Empty(t, b.Viral[0].Genera)
}
