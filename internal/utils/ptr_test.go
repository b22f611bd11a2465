package utils_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/HieuLe2021/AutomateFlow-Tracker/internal/utils"
)

func TestPtr(t *testing.T) {
	v := utils.Ptr(42)
	require.NotNil(t, v)
	require.Equal(t, 42, *v)

	s := utils.Ptr("cursor")
	require.Equal(t, "cursor", *s)
}
