package http

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The embedded contract is what clients generate against; these tests keep
// it structurally valid and aligned with the routes the server mounts.

func loadContract(t *testing.T) *openapi3.T {
	t.Helper()
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	require.NoError(t, err)
	return doc
}

func TestOpenAPIContract_IsValid(t *testing.T) {
	doc := loadContract(t)
	require.NoError(t, doc.Validate(context.Background()))
}

func TestOpenAPIContract_DeclaresAllOperations(t *testing.T) {
	doc := loadContract(t)

	createPath := doc.Paths.Find("/shipments")
	require.NotNil(t, createPath)
	require.NotNil(t, createPath.Post)
	assert.Equal(t, "createShipment", createPath.Post.OperationID)

	getPath := doc.Paths.Find("/shipments/{number}")
	require.NotNil(t, getPath)
	require.NotNil(t, getPath.Get)
	assert.Equal(t, "getShipmentByNumber", getPath.Get.OperationID)

	updatePath := doc.Paths.Find("/shipments/update-status/{number}")
	require.NotNil(t, updatePath)
	require.NotNil(t, updatePath.Post)
	assert.Equal(t, "updateShipmentStatus", updatePath.Post.OperationID)
}

func TestOpenAPIContract_ServesEveryMountedVersion(t *testing.T) {
	doc := loadContract(t)

	declared := make(map[string]bool)
	for _, server := range doc.Servers {
		declared[server.URL] = true
	}

	for _, version := range apiVersions {
		assert.True(t, declared["/api/"+version], "version %s missing from contract servers", version)
	}
}

func TestOpenAPIContract_StatusEnumMatchesDomain(t *testing.T) {
	doc := loadContract(t)

	schema := doc.Components.Schemas["UpdateShipmentStatusRequest"]
	require.NotNil(t, schema)

	statusSchema := schema.Value.Properties["status"]
	require.NotNil(t, statusSchema)

	expected := []string{"Created", "Processing", "Dispatched", "InTransit", "WaitingCustomer", "Delivered", "Cancelled"}
	require.Len(t, statusSchema.Value.Enum, len(expected))
	for i, label := range expected {
		assert.Equal(t, label, statusSchema.Value.Enum[i])
	}
}
