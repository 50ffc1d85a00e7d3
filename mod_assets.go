package prism

import (
	"github.com/google/uuid"

	"github.com/prism3d/prism/render/mesh"
)

type AssetId string

// AssetServer owns mesh data shared between renderers. Meshes are stored
// untyped so differently laid out vertex structs can live side by side.
type AssetServer struct {
	meshes map[AssetId]MeshAsset
}

type AssetServerModule struct{}

type MeshAsset struct {
	name     string
	vertices mesh.AnySlice
	indices  []uint16
}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	app.addResources(&AssetServer{
		meshes: make(map[AssetId]MeshAsset),
	})
}

func (server *AssetServer) LoadMesh(name string, vertices mesh.AnySlice, indices []uint16) AssetId {
	id := makeAssetId()

	server.meshes[id] = MeshAsset{
		name:     name,
		vertices: vertices,
		indices:  indices,
	}

	return id
}

func (server *AssetServer) Mesh(id AssetId) (MeshAsset, bool) {
	asset, ok := server.meshes[id]
	return asset, ok
}

// CreateBallMesh builds a UV sphere with polyCount stacks and sectors.
func (server *AssetServer) CreateBallMesh(radius float32, polyCount int) AssetId {
	vertices, indices := mesh.Sphere(radius, polyCount)
	return server.LoadMesh("ball", mesh.MakeAnySlice(vertices), indices)
}

// CreateCubeMesh builds the unit cube instanced across the grid.
func (server *AssetServer) CreateCubeMesh() AssetId {
	vertices, indices := mesh.UnitCube()
	return server.LoadMesh("cube", mesh.MakeAnySlice(vertices), indices)
}

// CreateAxesMesh builds the RGB axis lines. No index buffer, the vertices
// already come in line-list order.
func (server *AssetServer) CreateAxesMesh(extent float32) AssetId {
	vertices := mesh.Axes(extent)
	return server.LoadMesh("axes", mesh.MakeAnySlice(vertices), nil)
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
