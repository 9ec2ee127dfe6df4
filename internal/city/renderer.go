package city

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer turns the engine's draw-command list into GL calls. Consecutive
// commands of the same kind batch into one draw; a kind change flushes, so
// the list's paint order is preserved exactly.
type Renderer struct {
	// Shape program: triangles and lines, per-vertex colour.
	shapeProg uint32
	shapeVAO  uint32
	shapeVBO  uint32
	shapeURes int32

	// Point sprite program + glow variant (shared VAO/VBO).
	pointProg uint32
	glowProg  uint32
	pointVAO  uint32
	pointVBO  uint32
	pointURes int32
	glowURes  int32

	// Reusable batch buffers to avoid per-frame heap allocations.
	triBuf   []float32 // x, y, r, g, b, a
	lineBuf  []float32
	pointBuf []float32 // x, y, size, r, g, b, a
}

func NewRenderer() (*Renderer, error) {
	shapeProg, err := linkProgram(shapeVertSrc, shapeFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shape program: %w", err)
	}
	pointProg, err := linkProgram(pointVertSrc, pointFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		return nil, fmt.Errorf("point program: %w", err)
	}
	glowProg, err := linkProgram(pointVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(shapeProg)
		gl.DeleteProgram(pointProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		shapeProg: shapeProg,
		pointProg: pointProg,
		glowProg:  glowProg,
	}

	// Shape VAO/VBO: streaming vertices, 6 floats each.
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)
	stride := int32(6 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, glOffset(2*4))
	r.shapeVAO = sVAO
	r.shapeVBO = sVBO

	gl.UseProgram(shapeProg)
	r.shapeURes = gl.GetUniformLocation(shapeProg, gl.Str("uResolution\x00"))

	// Point VAO/VBO: streaming sprites, 7 floats each.
	var pVAO, pVBO uint32
	gl.GenVertexArrays(1, &pVAO)
	gl.GenBuffers(1, &pVBO)
	gl.BindVertexArray(pVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, pVBO)
	pstride := int32(7 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, pstride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, pstride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, pstride, glOffset(3*4))
	r.pointVAO = pVAO
	r.pointVBO = pVBO

	gl.UseProgram(pointProg)
	r.pointURes = gl.GetUniformLocation(pointProg, gl.Str("uResolution\x00"))
	gl.UseProgram(glowProg)
	r.glowURes = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.shapeVBO, r.pointVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeVAO, r.pointVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.shapeProg, r.pointProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

// Render replays one composed frame.
func (r *Renderer) Render(f *Frame, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(Palette.SkyTop.R)/255.0,
		float32(Palette.SkyTop.G)/255.0,
		float32(Palette.SkyTop.B)/255.0,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	resW := float32(f.W)
	resH := float32(f.H)

	var kind CmdKind
	var lineWidth float32
	haveBatch := false

	flush := func() {
		if !haveBatch {
			return
		}
		switch kind {
		case CmdPoly:
			r.drawShapes(gl.TRIANGLES, r.triBuf, resW, resH)
			r.triBuf = r.triBuf[:0]
		case CmdLine:
			gl.LineWidth(lineWidth)
			r.drawShapes(gl.LINES, r.lineBuf, resW, resH)
			r.lineBuf = r.lineBuf[:0]
		case CmdPoint:
			r.drawPoints(r.pointProg, r.pointURes, false, resW, resH)
			r.pointBuf = r.pointBuf[:0]
		case CmdGlow:
			r.drawPoints(r.glowProg, r.glowURes, true, resW, resH)
			r.pointBuf = r.pointBuf[:0]
		}
		haveBatch = false
	}

	for _, cmd := range f.Cmds {
		if haveBatch && (cmd.Kind != kind || (cmd.Kind == CmdLine && cmd.Size != lineWidth)) {
			flush()
		}
		kind = cmd.Kind
		haveBatch = true
		pts := f.Pts(cmd)

		cr := float32(cmd.Col.R) / 255.0
		cg := float32(cmd.Col.G) / 255.0
		cb := float32(cmd.Col.B) / 255.0
		ca := cmd.Alpha

		switch cmd.Kind {
		case CmdPoly:
			// Fan triangulation; the compositor only emits convex polygons.
			for i := 1; i+1 < len(pts); i++ {
				r.triBuf = append(r.triBuf,
					pts[0].X, pts[0].Y, cr, cg, cb, ca,
					pts[i].X, pts[i].Y, cr, cg, cb, ca,
					pts[i+1].X, pts[i+1].Y, cr, cg, cb, ca,
				)
			}
		case CmdLine:
			lineWidth = cmd.Size
			r.lineBuf = append(r.lineBuf,
				pts[0].X, pts[0].Y, cr, cg, cb, ca,
				pts[1].X, pts[1].Y, cr, cg, cb, ca,
			)
		case CmdPoint:
			r.pointBuf = append(r.pointBuf, pts[0].X, pts[0].Y, cmd.Size, cr, cg, cb, ca)
		case CmdGlow:
			// Additive path: pre-multiply colour by alpha.
			r.pointBuf = append(r.pointBuf, pts[0].X, pts[0].Y, cmd.Size, cr*ca, cg*ca, cb*ca, ca)
		}
	}
	flush()
}

func (r *Renderer) drawShapes(mode uint32, buf []float32, resW, resH float32) {
	if len(buf) == 0 {
		return
	}
	gl.UseProgram(r.shapeProg)
	gl.Uniform2f(r.shapeURes, resW, resH)
	gl.BindVertexArray(r.shapeVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.shapeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(&buf[0]), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(buf)/6))
}

func (r *Renderer) drawPoints(prog uint32, uRes int32, additive bool, resW, resH float32) {
	if len(r.pointBuf) == 0 {
		return
	}
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	}
	gl.UseProgram(prog)
	gl.Uniform2f(uRes, resW, resH)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.pointBuf)*4, gl.Ptr(&r.pointBuf[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.pointBuf)/7))
	if additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
}
