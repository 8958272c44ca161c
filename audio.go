package crescendo

type Audio []float64

func FromFloat32(x []float32) Audio {
	a := make(Audio, len(x))
	for i, x := range x {
		a[i] = float64(x)
	}
	return a
}

func (z Audio) Add(x Audio, y Audio) Audio {
	for i := range z {
		z[i] = x[i] + y[i]
	}
	return z
}

func (z Audio) DivX(x Audio, f float64) Audio {
	for i := range z {
		z[i] = x[i] / f
	}
	return z
}

func (a Audio) Float32() []float32 {
	out := make([]float32, len(a))
	for i, x := range a {
		out[i] = float32(x)
	}
	return out
}
