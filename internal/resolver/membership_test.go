package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assemblee_syncer/internal/domain"
)

func TestFilterMemberships_AllowList(t *testing.T) {
	mandats := []domain.Mandat{
		{OrganeType: "COMPER", OrganeRef: "PO1"},
		{OrganeType: "ASSEMBLEE", OrganeRef: "PO2"}, // chamber itself, dropped
		{OrganeType: "GP", OrganeRef: "PO3"},        // political group, dropped
		{OrganeType: "DELEG", OrganeRef: "PO4"},
		{OrganeType: "MINISTERE", OrganeRef: "PO5"}, // unknown type, dropped
		{OrganeType: "GE", OrganeRef: ""},           // missing ref, dropped
	}

	memberships := FilterMemberships("PA100", mandats)
	require.Len(t, memberships, 2)
	assert.Equal(t, "PO1", memberships[0].OrganeRef)
	assert.Equal(t, "PO4", memberships[1].OrganeRef)
	assert.Equal(t, "PA100", memberships[0].DeputeRef)
}

func TestFilterMemberships_DuplicateKeepsLatest(t *testing.T) {
	mandats := []domain.Mandat{
		{OrganeType: "COMPER", OrganeRef: "PO1", Start: datePtr(2022, 6, 22), End: datePtr(2024, 6, 9)},
		{OrganeType: "COMPER", OrganeRef: "PO1", Start: datePtr(2024, 7, 20)}, // re-appointed, still serving
	}

	memberships := FilterMemberships("PA100", mandats)
	require.Len(t, memberships, 1)
	assert.Equal(t, *datePtr(2024, 7, 20), *memberships[0].Start)
	assert.Nil(t, memberships[0].End)
}

func TestFilterMemberships_PreservesFirstSeenOrder(t *testing.T) {
	mandats := []domain.Mandat{
		{OrganeType: "GA", OrganeRef: "PO9"},
		{OrganeType: "COMPER", OrganeRef: "PO1"},
		{OrganeType: "GA", OrganeRef: "PO9", End: datePtr(2020, 1, 1)},
	}

	memberships := FilterMemberships("PA100", mandats)
	require.Len(t, memberships, 2)
	assert.Equal(t, "PO9", memberships[0].OrganeRef)
	assert.Equal(t, "PO1", memberships[1].OrganeRef)
	// the null-end record for PO9 wins over the ended duplicate
	assert.Nil(t, memberships[0].End)
}

func TestFilterMemberships_Empty(t *testing.T) {
	assert.Empty(t, FilterMemberships("PA100", nil))
}
