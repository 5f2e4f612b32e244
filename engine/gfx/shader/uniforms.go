package shader

// Uniform identifies one input of the fixed raymarch uniform contract.
type Uniform int

const (
	Resolution Uniform = iota
	Time
	CamOrigin
	CamTarget
	Fov
	SunDir
	MaterialMetallic
	MaterialRoughness
	MaterialF0
	MaterialAmbient
	MaterialBrightness
	PointLightPos
	PointLightColor
	PointLightIntensity

	numUniforms
)

var uniformNames = [numUniforms]string{
	Resolution:          "uResolution",
	Time:                "uTime",
	CamOrigin:           "uCamOrigin",
	CamTarget:           "uCamTarget",
	Fov:                 "uFov",
	SunDir:              "uSunDir",
	MaterialMetallic:    "material_metallic",
	MaterialRoughness:   "material_roughness",
	MaterialF0:          "material_f0",
	MaterialAmbient:     "material_ambient",
	MaterialBrightness:  "material_brightness",
	PointLightPos:       "pointLightPos",
	PointLightColor:     "pointLightColor",
	PointLightIntensity: "pointLightIntensity",
}

// Name returns the GLSL identifier the shader declares.
func (u Uniform) Name() string {
	if u < 0 || u >= numUniforms {
		return ""
	}
	return uniformNames[u]
}

func (u Uniform) String() string { return u.Name() }

// AllUniforms lists the contract in declaration order.
func AllUniforms() []Uniform {
	out := make([]Uniform, numUniforms)
	for i := range out {
		out[i] = Uniform(i)
	}
	return out
}

// Absent is the location of a uniform the linked program does not expose.
const Absent int32 = -1

// Locations is the resolved uniform table of one linked program. It is a
// value: copies are independent and nothing mutates it after Load.
type Locations struct {
	loc [numUniforms]int32
}

func absentLocations() Locations {
	var l Locations
	for i := range l.loc {
		l.loc[i] = Absent
	}
	return l
}

func (l Locations) Location(u Uniform) int32 {
	if u < 0 || u >= numUniforms {
		return Absent
	}
	return l.loc[u]
}

func (l Locations) Has(u Uniform) bool { return l.Location(u) >= 0 }

// Lookup resolves a uniform by its GLSL name.
func (l Locations) Lookup(name string) (int32, bool) {
	for i, n := range uniformNames {
		if n == name {
			return l.loc[i], l.loc[i] >= 0
		}
	}
	return Absent, false
}
