package brdf

// Material groups the reflectance data of one surface side: a BRDF plus
// an optional specular-reflectance table over the incoming direction.
// Each component is exclusively owned.
type Material struct {
	brdf                *Brdf
	specularReflectance *SampleSet2D
}

// NewMaterial creates a material. specularReflectance may be nil.
func NewMaterial(b *Brdf, specularReflectance *SampleSet2D) *Material {
	return &Material{brdf: b, specularReflectance: specularReflectance}
}

// Brdf returns the material's BRDF.
func (m *Material) Brdf() *Brdf { return m.brdf }

// SpecularReflectance returns the specular reflectance table, or nil.
func (m *Material) SpecularReflectance() *SampleSet2D { return m.specularReflectance }

// TwoSidedMaterial pairs independently owned front and back materials.
// Composition only; it carries no interpolation responsibility.
type TwoSidedMaterial struct {
	front *Material
	back  *Material
}

// NewTwoSidedMaterial creates a two-sided material.
func NewTwoSidedMaterial(front, back *Material) *TwoSidedMaterial {
	return &TwoSidedMaterial{front: front, back: back}
}

// Front returns the front-side material.
func (m *TwoSidedMaterial) Front() *Material { return m.front }

// Back returns the back-side material.
func (m *TwoSidedMaterial) Back() *Material { return m.back }
