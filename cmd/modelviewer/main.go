// Command modelviewer bootstraps a rendering context against the real
// driver stack, loads a Wavefront OBJ mesh, and uploads its vertex and
// index buffers to the device. It exercises the full initialization
// and teardown protocol end to end.
package main

import (
	"bytes"
	"encoding/binary"
	"log"
	"os"
	"runtime"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/renderware/vkcontext"
	"github.com/renderware/vkcontext/driver"
	"github.com/renderware/vkcontext/driver/vkng"
	"github.com/renderware/vkcontext/uploader"
)

type vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

type uniformBufferObject struct {
	Model mgl32.Mat4
	View  mgl32.Mat4
	Proj  mgl32.Mat4
}

func main() {
	runtime.LockOSThread()

	if len(os.Args) < 2 {
		log.Fatalln("usage: modelviewer <mesh.obj>")
	}

	if err := run(os.Args[1]); err != nil {
		log.Fatalf("%+v\n", err)
	}
}

func run(meshPath string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow("Model Viewer", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		800, 600, sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return err
	}
	defer window.Destroy()

	vkWindow := vkng.NewWindow(window)
	drv, err := vkng.NewDriverFromProcAddr(vkWindow.ProcAddr())
	if err != nil {
		return err
	}

	ctx, err := vkcontext.New(drv, vkWindow, vkcontext.Config{
		AppName: "modelviewer",
		Debug:   true,
	})
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	limits := ctx.Limits()
	log.Printf("uniform buffer offset alignment: %d, storage: %d",
		limits.MinUniformBufferOffsetAlignment, limits.MinStorageBufferOffsetAlignment)

	vertices, indices, err := loadMesh(meshPath)
	if err != nil {
		return err
	}

	vertexData, err := encode(vertices)
	if err != nil {
		return err
	}
	indexData, err := encode(indices)
	if err != nil {
		return err
	}
	uniformData, err := encode(newUniforms(800.0 / 600.0))
	if err != nil {
		return err
	}

	buffers, err := ctx.Uploader().UploadBatch([]uploader.Payload{
		{Data: vertexData, Usage: driver.BufferVertex},
		{Data: indexData, Usage: driver.BufferIndex},
		{Data: uniformData, Usage: driver.BufferUniform},
	})
	if err != nil {
		return err
	}
	defer func() {
		for _, buffer := range buffers {
			buffer.Destroy()
		}
	}()

	log.Printf("uploaded mesh %q: %d vertices, %d indices", meshPath, len(vertices), len(indices))

	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				return ctx.Device().WaitIdle()
			}
		}
	}
}

func loadMesh(path string) ([]vertex, []uint32, error) {
	decoder, err := obj.Decode(path, "")
	if err != nil {
		return nil, nil, err
	}

	var vertices []vertex
	var indices []uint32
	uniqueVertices := make(map[int]uint32)

	addVertex := func(face obj.Face, faceIndex int) {
		vertIdx := face.Vertices[faceIndex]
		index, exists := uniqueVertices[vertIdx]
		if !exists {
			vertices = append(vertices, vertex{
				Position: mgl32.Vec3{
					decoder.Vertices[vertIdx*3],
					decoder.Vertices[vertIdx*3+1],
					decoder.Vertices[vertIdx*3+2],
				},
				Color: mgl32.Vec3{1, 1, 1},
			})
			index = uint32(len(vertices) - 1)
			uniqueVertices[vertIdx] = index
		}
		indices = append(indices, index)
	}

	for _, decodedObj := range decoder.Objects {
		for _, face := range decodedObj.Faces {
			// Faces may have more than three corners; triangularize.
			for i := 2; i < len(face.Vertices); i++ {
				addVertex(face, 0)
				addVertex(face, i-1)
				addVertex(face, i)
			}
		}
	}

	return vertices, indices, nil
}

func newUniforms(aspect float32) uniformBufferObject {
	return uniformBufferObject{
		Model: mgl32.Ident4(),
		View:  mgl32.LookAtV(mgl32.Vec3{2, 2, 2}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}),
		Proj:  mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, 10),
	}
}

func encode(data interface{}) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := binary.Write(buf, binary.LittleEndian, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
