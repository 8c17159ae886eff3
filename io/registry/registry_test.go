package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clustermesh/quorumcall/core/dto"
)

func encode(t *testing.T, sib dto.Sibling) []byte {
	raw, err := json.Marshal(sib)
	require.NoError(t, err)

	return raw
}

func TestDecodeSiblingsFiltersByServiceAndStatus(t *testing.T) {
	values := [][]byte{
		encode(t, dto.Sibling{ProcessID: "w1", InstanceID: "i1", Service: "payments", Addr: "h1:3000", Status: dto.StatusOnline}),
		encode(t, dto.Sibling{ProcessID: "w2", InstanceID: "i2", Service: "payments", Addr: "h2:3000", Status: "draining"}),
		encode(t, dto.Sibling{ProcessID: "w3", InstanceID: "i3", Service: "billing", Addr: "h3:3000", Status: dto.StatusOnline}),
		encode(t, dto.Sibling{ProcessID: "w4", InstanceID: "i4", Service: "payments", Addr: "h4:3000", Status: dto.StatusOnline}),
	}

	got := decodeSiblings(values, "payments")
	require.Len(t, got, 2)
	require.Equal(t, "w1", got[0].ProcessID)
	require.Equal(t, "w4", got[1].ProcessID)
}

func TestDecodeSiblingsSkipsMalformedEntries(t *testing.T) {
	values := [][]byte{
		[]byte("{not json"),
		encode(t, dto.Sibling{ProcessID: "w1", Service: "payments", Status: dto.StatusOnline}),
	}

	got := decodeSiblings(values, "payments")
	require.Len(t, got, 1)
	require.Equal(t, "w1", got[0].ProcessID)
}

func TestDecodeSiblingsOfEmptyRegistry(t *testing.T) {
	require.Empty(t, decodeSiblings(nil, "payments"))
}

func TestWorkerKeys(t *testing.T) {
	require.Equal(t, "/services/payments/workers/", workerPrefix("payments"))
	require.Equal(t, "/services/payments/workers/w1", workerKey("payments", "w1"))
}
