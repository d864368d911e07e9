package compiler

import (
	"fmt"
	"time"

	"github.com/zhzh2001/litewq/asset/compiler/input"
	"github.com/zhzh2001/litewq/log"
	"github.com/zhzh2001/litewq/scene"
	"github.com/zhzh2001/litewq/types"
)

type sceneCompiler struct {
	parsedScene    *input.Scene
	optimizedScene *scene.Scene
	logger         log.Logger
}

// Compile a scene representation parsed by a scene reader into a scene with
// one collidable object per mesh instance. Each object gets its own BVH.
func Compile(parsedScene *input.Scene) (*scene.Scene, error) {
	compiler := &sceneCompiler{
		parsedScene:    parsedScene,
		optimizedScene: scene.NewScene(),
		logger:         log.New("scene compiler"),
	}

	start := time.Now()
	compiler.logger.Noticef("compiling scene")

	err := compiler.validateMeshes()
	if err != nil {
		return nil, err
	}

	compiler.generateDefaultInstances()

	err = compiler.partitionGeometry()
	if err != nil {
		return nil, err
	}

	compiler.logger.Noticef("compiled scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return compiler.optimizedScene, nil
}

// Ensure that all mesh indices point to a valid vertex.
func (sc *sceneCompiler) validateMeshes() error {
	for _, mesh := range sc.parsedScene.Meshes {
		if err := mesh.Validate(); err != nil {
			return fmt.Errorf("scene compiler: mesh '%s': %s", mesh.Name, err.Error())
		}
	}
	return nil
}

// If the scene defines no mesh instances, create an instance with an identity
// transform for each mesh.
func (sc *sceneCompiler) generateDefaultInstances() {
	if len(sc.parsedScene.MeshInstances) != 0 {
		return
	}

	for index, mesh := range sc.parsedScene.Meshes {
		sc.parsedScene.MeshInstances = append(sc.parsedScene.MeshInstances, &input.MeshInstance{
			Name:      mesh.Name,
			MeshIndex: uint32(index),
			Transform: types.Ident4(),
		})
	}
	sc.logger.Infof("generated %d default mesh instances", len(sc.parsedScene.MeshInstances))
}

// Create a scene object for each mesh instance and build its BVH tree.
func (sc *sceneCompiler) partitionGeometry() error {
	start := time.Now()
	sc.logger.Notice("partitioning geometry")

	triangles := 0
	for _, inst := range sc.parsedScene.MeshInstances {
		if int(inst.MeshIndex) >= len(sc.parsedScene.Meshes) {
			return fmt.Errorf("scene compiler: instance '%s' references unknown mesh %d", inst.Name, inst.MeshIndex)
		}
		mesh := sc.parsedScene.Meshes[inst.MeshIndex]

		object := scene.NewObject(inst.Name, &mesh.Mesh, inst.Transform)
		tree := object.BuildBVH()
		if err := sc.optimizedScene.AddObject(object); err != nil {
			return err
		}

		stats := tree.Stats()
		triangles += stats.Shapes
		sc.logger.Infof("object '%s': %d triangles, %d nodes, depth %d", inst.Name, stats.Shapes, stats.Nodes, stats.MaxDepth)
	}

	sc.logger.Noticef(
		"partitioned %d triangles into %d objects in %d ms",
		triangles, len(sc.optimizedScene.Objects), time.Since(start).Nanoseconds()/1e6,
	)
	return nil
}
