package frame

// Planes describes where each plane of a planar frame lives inside a
// single contiguous allocation.
type Planes struct {
	YOffset  int
	YLen     int
	CbOffset int
	CbLen    int
	CrOffset int
	CrLen    int
}

// I420Planes computes the plane layout of an I420 frame: the luma plane
// covers width*height bytes, each chroma plane a quarter of that,
// laid out luma then Cb then Cr.
func I420Planes(width, height int) Planes {
	yi := width * height
	ci := yi / 4
	return Planes{
		YOffset:  0,
		YLen:     yi,
		CbOffset: yi,
		CbLen:    ci,
		CrOffset: yi + ci,
		CrLen:    ci,
	}
}

// Size is the total number of bytes the laid out planes occupy.
func (p Planes) Size() int {
	return p.YLen + p.CbLen + p.CrLen
}

// Y returns the luma plane view of buf.
func (p Planes) Y(buf []byte) []byte {
	return buf[p.YOffset : p.YOffset+p.YLen : p.YOffset+p.YLen]
}

// Cb returns the blue difference chroma plane view of buf.
func (p Planes) Cb(buf []byte) []byte {
	return buf[p.CbOffset : p.CbOffset+p.CbLen : p.CbOffset+p.CbLen]
}

// Cr returns the red difference chroma plane view of buf.
func (p Planes) Cr(buf []byte) []byte {
	return buf[p.CrOffset : p.CrOffset+p.CrLen : p.CrOffset+p.CrLen]
}
