package reader

import (
	"bufio"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/zhzh2001/litewq/asset"
	"github.com/zhzh2001/litewq/asset/compiler/input"
	"github.com/zhzh2001/litewq/log"
	"github.com/zhzh2001/litewq/types"
)

// Directives that describe surface appearance rather than geometry. They are
// accepted but ignored.
var appearanceDirectives = map[string]bool{
	"vn":     true,
	"vt":     true,
	"usemtl": true,
	"mtllib": true,
	"s":      true,
}

type wavefrontSceneReader struct {
	logger log.Logger

	// The parsed scene.
	rawScene *input.Scene

	// Vertex positions shared by all objects in the file and its includes.
	vertexList []types.Vec3

	// Maps vertexList indices to indices in the mesh currently being parsed.
	meshVertexMap map[int]uint32

	// Number of appearance directives that were skipped.
	skipped int

	// An error stack that provides additional error information when
	// scene files include other files.
	errStack []string
}

// Create a new wavefront scene reader.
func newWavefrontReader() *wavefrontSceneReader {
	return &wavefrontSceneReader{
		logger:        log.New("wavefront scene reader"),
		rawScene:      input.NewScene(),
		vertexList:    make([]types.Vec3, 0),
		meshVertexMap: make(map[int]uint32),
		errStack:      make([]string, 0),
	}
}

// Read scene definition.
func (r *wavefrontSceneReader) Read(sceneRes *asset.Resource) (*input.Scene, error) {
	r.logger.Noticef(`parsing scene from "%s"`, sceneRes.Path())
	start := time.Now()

	err := r.parse(sceneRes)
	if err != nil {
		return nil, err
	}

	// Included files may leave a mesh open for faces defined after the
	// include so empty meshes are only dropped once the whole scene is read.
	r.verifyLastParsedMesh()

	if r.skipped > 0 {
		r.logger.Infof("ignored %d normal, uv and material directives", r.skipped)
	}

	r.logger.Noticef(
		"parsed %d meshes and %d mesh instances in %d ms",
		len(r.rawScene.Meshes), len(r.rawScene.MeshInstances), time.Since(start).Nanoseconds()/1e6,
	)
	return r.rawScene, nil
}

// Generate an error message that also includes any data in the error stack.
func (r *wavefrontSceneReader) emitError(file string, line int, msgFormat string, args ...interface{}) error {
	msg := fmt.Sprintf(msgFormat, args...)

	var errMsg string
	if file != "" {
		errMsg = fmt.Sprintf("[%s: %d] error: %s\n%s", file, line, msg, strings.Join(r.errStack, "\n"))
	} else {
		errMsg = fmt.Sprintf("error: %s\n%s", msg, strings.Join(r.errStack, "\n"))
	}

	return fmt.Errorf("%s", strings.Trim(errMsg, "\n"))
}

// Push a frame to the error stack.
func (r *wavefrontSceneReader) pushFrame(msg string) {
	r.errStack = append([]string{msg}, r.errStack...)
}

// Pop a frame from the error stack.
func (r *wavefrontSceneReader) popFrame() {
	r.errStack = r.errStack[1:]
}

// Start a new mesh.
func (r *wavefrontSceneReader) beginMesh(name string) {
	r.verifyLastParsedMesh()
	r.rawScene.Meshes = append(r.rawScene.Meshes, input.NewMesh(name))
	r.meshVertexMap = make(map[int]uint32)
}

// Get the mesh that faces are currently appended to. A default mesh is created
// for faces appearing before any object definition.
func (r *wavefrontSceneReader) currentMesh() *input.Mesh {
	if len(r.rawScene.Meshes) == 0 {
		r.beginMesh("default")
	}
	return r.rawScene.Meshes[len(r.rawScene.Meshes)-1]
}

// Parse wavefront object scene format.
func (r *wavefrontSceneReader) parse(res *asset.Resource) error {
	var lineNum int = 0

	// The main obj file may include (call) several other object files. Each
	// object file contains 1-based indices (when they are positive). By
	// tracking the current vertex offset we can apply it while parsing faces
	// to select the correct coordinates.
	relVertexOffset := len(r.vertexList)

	scanner := bufio.NewScanner(res)
	for scanner.Scan() {
		lineNum++
		lineTokens := strings.Fields(scanner.Text())
		if len(lineTokens) == 0 || strings.HasPrefix(lineTokens[0], "#") {
			continue
		}

		switch lineTokens[0] {
		case "call":
			if len(lineTokens) != 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument; got %d`, lineTokens[0], len(lineTokens)-1)
			}

			r.pushFrame(fmt.Sprintf("referenced from %s:%d [%s]", res.Path(), lineNum, lineTokens[0]))

			incRes, err := asset.NewResource(lineTokens[1], res)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}

			err = r.parse(incRes)
			incRes.Close()
			if err != nil {
				return err
			}
			r.popFrame()
		case "v":
			v, err := parseVec3(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.vertexList = append(r.vertexList, v)
		case "g", "o":
			if len(lineTokens) < 2 {
				return r.emitError(res.Path(), lineNum, `unsupported syntax for "%s"; expected 1 argument for object name; got %d`, lineTokens[0], len(lineTokens)-1)
			}
			r.beginMesh(lineTokens[1])
		case "f":
			err := r.parseFace(lineTokens, relVertexOffset)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
		case "instance":
			instance, err := r.parseMeshInstance(lineTokens)
			if err != nil {
				return r.emitError(res.Path(), lineNum, "%s", err.Error())
			}
			r.rawScene.MeshInstances = append(r.rawScene.MeshInstances, instance)
		default:
			if appearanceDirectives[lineTokens[0]] {
				r.skipped++
				continue
			}
			r.logger.Debugf("[%s: %d] ignoring unknown directive %q", res.Path(), lineNum, lineTokens[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return r.emitError(res.Path(), lineNum, "%s", err.Error())
	}

	return nil
}

// Drop the last parsed mesh if it contains no faces.
func (r *wavefrontSceneReader) verifyLastParsedMesh() {
	lastMeshIndex := len(r.rawScene.Meshes) - 1
	if lastMeshIndex >= 0 && len(r.rawScene.Meshes[lastMeshIndex].Indices) == 0 {
		r.logger.Warningf(`dropping mesh "%s" as it contains no polygons`, r.rawScene.Meshes[lastMeshIndex].Name)
		r.rawScene.Meshes = r.rawScene.Meshes[:lastMeshIndex]
	}
}

// Parse mesh instance definition. Definitions use the following format:
// instance mesh_name tX tY tZ yaw pitch roll sX sY sZ
// where:
// - tX, tY, tZ       : translation vector
// - yaw, pitch, roll : rotation angles in degrees
// - sX, sY, sZ	      : scale
func (r *wavefrontSceneReader) parseMeshInstance(lineTokens []string) (*input.MeshInstance, error) {
	if len(lineTokens) != 11 {
		return nil, fmt.Errorf(`unsupported syntax for "instance"; expected 10 arguments: mesh_name tX tY tZ yaw pitch roll sX sY sZ; got %d`, len(lineTokens)-1)
	}

	meshName := lineTokens[1]
	meshIndex := -1
	for index, mesh := range r.rawScene.Meshes {
		if mesh.Name == meshName {
			meshIndex = index
			break
		}
	}

	if meshIndex == -1 {
		return nil, fmt.Errorf(`unknown mesh with name "%s"`, meshName)
	}
	if len(r.rawScene.Meshes[meshIndex].Indices) == 0 {
		return nil, fmt.Errorf(`mesh "%s" contains no polygons`, meshName)
	}

	var params [9]float32
	for index := range params {
		v, err := strconv.ParseFloat(lineTokens[index+2], 32)
		if err != nil {
			return nil, err
		}
		params[index] = float32(v)
	}

	translation := types.Vec3{params[0], params[1], params[2]}
	rotation := types.Vec3{params[3], params[4], params[5]}.Mul(math.Pi / 180.0)
	scale := types.Vec3{params[6], params[7], params[8]}

	// M = T * R * S
	transform := types.Translate4(translation).Mul4(types.Rotate4(rotation).Mul4(types.Scale4(scale)))

	return &input.MeshInstance{
		Name:      fmt.Sprintf("%s#%d", meshName, r.countInstances(uint32(meshIndex))),
		MeshIndex: uint32(meshIndex),
		Transform: transform,
	}, nil
}

// Count the instances already defined for a mesh.
func (r *wavefrontSceneReader) countInstances(meshIndex uint32) int {
	count := 0
	for _, inst := range r.rawScene.MeshInstances {
		if inst.MeshIndex == meshIndex {
			count++
		}
	}
	return count
}

// Parse face definition. Each face definition consists of 3 or 4 arguments,
// one for each vertex. Each one of the vertex arguments is comprised of
// 1, 2 or 3 indices separated by a slash character. The following formats are
// supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// Only the vertex index is used. Indices start from 1 and may be negative to
// indicate an offset off the end of the vertex list. Quad faces are split into
// two triangles.
func (r *wavefrontSceneReader) parseFace(lineTokens []string, relVertexOffset int) error {
	if len(lineTokens) < 4 || len(lineTokens) > 5 {
		return fmt.Errorf(`unsupported syntax for "f"; expected 3 arguments for triangular face or 4 arguments for a quad face; got %d. Select the triangulation option in your exporter`, len(lineTokens)-1)
	}

	var vertices [4]int
	expIndices := 0
	for arg := 0; arg < len(lineTokens)-1; arg++ {
		vTokens := strings.Split(lineTokens[arg+1], "/")

		// The first arg defines the format for the following args
		if arg == 0 {
			expIndices = len(vTokens)
		} else if len(vTokens) != expIndices {
			return fmt.Errorf("expected each face argument to contain %d indices; arg %d contains %d indices", expIndices, arg, len(vTokens))
		}

		if vTokens[0] == "" {
			return fmt.Errorf("face argument %d does not include a vertex index", arg)
		}

		vOffset, err := selectFaceCoordIndex(vTokens[0], len(r.vertexList), relVertexOffset)
		if err != nil {
			return fmt.Errorf("could not parse vertex coord for face argument %d: %s", arg, err.Error())
		}
		vertices[arg] = vOffset
	}

	mesh := r.currentMesh()
	indiceList := [][3]int{{0, 1, 2}}
	if len(lineTokens) == 5 {
		indiceList = append(indiceList, [3]int{0, 2, 3})
	}
	for _, indices := range indiceList {
		for _, selectIndex := range indices {
			mesh.Indices = append(mesh.Indices, r.meshVertex(mesh, vertices[selectIndex]))
		}
	}

	return nil
}

// Get the index of a global vertex inside the mesh vertex list, copying the
// vertex into the mesh the first time it is referenced.
func (r *wavefrontSceneReader) meshVertex(mesh *input.Mesh, globalIndex int) uint32 {
	if index, exists := r.meshVertexMap[globalIndex]; exists {
		return index
	}
	index := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, r.vertexList[globalIndex])
	r.meshVertexMap[globalIndex] = index
	return index
}

// Given an index for a face vertex calculate the proper offset into the
// vertex list. Wavefront format can also use negative indices to reference
// elements from the end of the list.
func selectFaceCoordIndex(indexToken string, coordListLen int, relOffset int) (int, error) {
	index, err := strconv.ParseInt(indexToken, 10, 32)
	if err != nil {
		return -1, err
	}

	var vOffset int = 0
	if index == 0 {
		return -1, fmt.Errorf("invalid index 0; indices start at 1")
	} else if index < 0 {
		vOffset = coordListLen + int(index)
	} else {
		vOffset = relOffset + int(index-1)
	}
	if vOffset < 0 || vOffset >= coordListLen {
		return -1, fmt.Errorf("index out of bounds")
	}
	return vOffset, nil
}

// Parse a Vec3 row.
func parseVec3(lineTokens []string) (types.Vec3, error) {
	if len(lineTokens) < 4 {
		return types.Vec3{}, fmt.Errorf(`unsupported syntax for '%s'; expected 3 arguments; got %d`, lineTokens[0], len(lineTokens)-1)
	}

	v := types.Vec3{}
	for tokIdx := 1; tokIdx <= 3; tokIdx++ {
		coord, err := strconv.ParseFloat(lineTokens[tokIdx], 32)
		if err != nil {
			return v, err
		}
		v[tokIdx-1] = float32(coord)
	}
	return v, nil
}
