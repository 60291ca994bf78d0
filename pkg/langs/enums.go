package langs

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// enumNames maps an enum's ordinal to its quicktype spelling. Ordinal 0 is
// always the language default so that zero-valued option structs are defaults.
type enumNames []string

func (n enumNames) name(i int) string {
	if i < 0 || i >= len(n) {
		return strconv.Itoa(i)
	}
	return n[i]
}

func (n enumNames) parse(kind string, text []byte) (int, error) {
	s := string(text)
	for i, v := range n {
		if v == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q (valid: %s)", kind, s, strings.Join(n, ", "))
}

// Values lists the accepted spellings of every enum option, keyed by kind.
// Used by the CLI to document options.
func Values() map[string][]string {
	return map[string][]string{
		"acronym-style":   acronymStyleNames,
		"converters":      convertersNames,
		"raw-type":        rawTypeNames,
		"framework":       frameworkNames,
		"csharp-version":  csharpVersionNames,
		"density":         densityNames,
		"array-type":      arrayTypeNames,
		"number-type":     numberTypeNames,
		"any-type":        anyTypeNames,
		"features":        featuresNames,
		"base-class":      baseClassNames,
		"python-version":  pythonVersionNames,
		"strictness":      strictnessNames,
		"visibility":      visibilityNames,
		"struct-or-class": structOrClassNames,
		"swift-density":   swiftDensityNames,
		"access-level":    accessLevelNames,
		"protocol":        protocolNames,
	}
}

// AcronymStyle controls how acronyms are cased in generated identifiers.
type AcronymStyle int

const (
	AcronymPascal AcronymStyle = iota
	AcronymOriginal
	AcronymCamel
	AcronymLowerCase
)

var acronymStyleNames = enumNames{"pascal", "original", "camel", "lowerCase"}

func (v AcronymStyle) String() string               { return acronymStyleNames.name(int(v)) }
func (v AcronymStyle) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *AcronymStyle) UnmarshalText(b []byte) error {
	i, err := acronymStyleNames.parse("acronym style", b)
	if err != nil {
		return err
	}
	*v = AcronymStyle(i)
	return nil
}

// Converters selects which types get JSON converter helpers.
type Converters int

const (
	ConvertersTopLevel Converters = iota
	ConvertersAllObjects
)

var convertersNames = enumNames{"top-level", "all-objects"}

func (v Converters) String() string               { return convertersNames.name(int(v)) }
func (v Converters) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *Converters) UnmarshalText(b []byte) error {
	i, err := convertersNames.parse("converters", b)
	if err != nil {
		return err
	}
	*v = Converters(i)
	return nil
}

// RawType is the input type accepted by generated TypeScript converters.
type RawType int

const (
	RawTypeJSON RawType = iota
	RawTypeAny
)

var rawTypeNames = enumNames{"json", "any"}

func (v RawType) String() string               { return rawTypeNames.name(int(v)) }
func (v RawType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *RawType) UnmarshalText(b []byte) error {
	i, err := rawTypeNames.parse("raw type", b)
	if err != nil {
		return err
	}
	*v = RawType(i)
	return nil
}

// Framework is the C# serialization framework.
type Framework int

const (
	FrameworkNewtonSoft Framework = iota
	FrameworkSystemTextJSON
)

var frameworkNames = enumNames{"NewtonSoft", "SystemTextJson"}

func (v Framework) String() string               { return frameworkNames.name(int(v)) }
func (v Framework) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *Framework) UnmarshalText(b []byte) error {
	i, err := frameworkNames.parse("framework", b)
	if err != nil {
		return err
	}
	*v = Framework(i)
	return nil
}

// CSharpVersion is the C# language version targeted.
type CSharpVersion int

const (
	CSharp6 CSharpVersion = iota
	CSharp5
)

var csharpVersionNames = enumNames{"6", "5"}

func (v CSharpVersion) String() string               { return csharpVersionNames.name(int(v)) }
func (v CSharpVersion) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *CSharpVersion) UnmarshalText(b []byte) error {
	i, err := csharpVersionNames.parse("C# version", b)
	if err != nil {
		return err
	}
	*v = CSharpVersion(i)
	return nil
}

// UnmarshalJSON accepts both 6 and "6".
func (v *CSharpVersion) UnmarshalJSON(b []byte) error {
	return v.UnmarshalText(bytes.Trim(b, `"`))
}

// Density is the property density of generated C# and Rust code.
type Density int

const (
	DensityNormal Density = iota
	DensityDense
)

var densityNames = enumNames{"normal", "dense"}

func (v Density) String() string               { return densityNames.name(int(v)) }
func (v Density) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *Density) UnmarshalText(b []byte) error {
	i, err := densityNames.parse("density", b)
	if err != nil {
		return err
	}
	*v = Density(i)
	return nil
}

// ArrayType chooses between array and list representations.
type ArrayType int

const (
	ArrayTypeArray ArrayType = iota
	ArrayTypeList
)

var arrayTypeNames = enumNames{"array", "list"}

func (v ArrayType) String() string               { return arrayTypeNames.name(int(v)) }
func (v ArrayType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *ArrayType) UnmarshalText(b []byte) error {
	i, err := arrayTypeNames.parse("array type", b)
	if err != nil {
		return err
	}
	*v = ArrayType(i)
	return nil
}

// NumberType is the C# type used for JSON numbers.
type NumberType int

const (
	NumberTypeDouble NumberType = iota
	NumberTypeDecimal
)

var numberTypeNames = enumNames{"double", "decimal"}

func (v NumberType) String() string               { return numberTypeNames.name(int(v)) }
func (v NumberType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *NumberType) UnmarshalText(b []byte) error {
	i, err := numberTypeNames.parse("number type", b)
	if err != nil {
		return err
	}
	*v = NumberType(i)
	return nil
}

// AnyType is the C# type used for untyped JSON values.
type AnyType int

const (
	AnyTypeObject AnyType = iota
	AnyTypeDynamic
)

var anyTypeNames = enumNames{"object", "dynamic"}

func (v AnyType) String() string               { return anyTypeNames.name(int(v)) }
func (v AnyType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *AnyType) UnmarshalText(b []byte) error {
	i, err := anyTypeNames.parse("any type", b)
	if err != nil {
		return err
	}
	*v = AnyType(i)
	return nil
}

// Features selects how much C# support code is generated.
type Features int

const (
	FeaturesComplete Features = iota
	FeaturesAttributesOnly
	FeaturesJustTypesAndNamespace
	FeaturesJustTypes
)

var featuresNames = enumNames{"complete", "attributes-only", "just-types-and-namespace", "just-types"}

func (v Features) String() string               { return featuresNames.name(int(v)) }
func (v Features) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *Features) UnmarshalText(b []byte) error {
	i, err := featuresNames.parse("features", b)
	if err != nil {
		return err
	}
	*v = Features(i)
	return nil
}

// BaseClass is the base class of generated C# types.
type BaseClass int

const (
	BaseClassObject BaseClass = iota
	BaseClassEntityData
)

var baseClassNames = enumNames{"Object", "EntityData"}

func (v BaseClass) String() string               { return baseClassNames.name(int(v)) }
func (v BaseClass) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *BaseClass) UnmarshalText(b []byte) error {
	i, err := baseClassNames.parse("base class", b)
	if err != nil {
		return err
	}
	*v = BaseClass(i)
	return nil
}

// PythonVersion is the minimum Python version targeted. It is always emitted.
type PythonVersion int

const (
	Python36 PythonVersion = iota
	Python35
	Python37
)

var pythonVersionNames = enumNames{"3.6", "3.5", "3.7"}

func (v PythonVersion) String() string               { return pythonVersionNames.name(int(v)) }
func (v PythonVersion) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *PythonVersion) UnmarshalText(b []byte) error {
	i, err := pythonVersionNames.parse("python version", b)
	if err != nil {
		return err
	}
	*v = PythonVersion(i)
	return nil
}

// UnmarshalJSON accepts both 3.7 and "3.7".
func (v *PythonVersion) UnmarshalJSON(b []byte) error {
	return v.UnmarshalText(bytes.Trim(b, `"`))
}

// Strictness is the Ruby type strictness level.
type Strictness int

const (
	StrictnessStrict Strictness = iota
	StrictnessCoercible
	StrictnessNone
)

var strictnessNames = enumNames{"strict", "coercible", "none"}

func (v Strictness) String() string               { return strictnessNames.name(int(v)) }
func (v Strictness) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *Strictness) UnmarshalText(b []byte) error {
	i, err := strictnessNames.parse("strictness", b)
	if err != nil {
		return err
	}
	*v = Strictness(i)
	return nil
}

// Visibility is the Rust field visibility.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityCrate
	VisibilityPublic
)

var visibilityNames = enumNames{"private", "crate", "public"}

func (v Visibility) String() string               { return visibilityNames.name(int(v)) }
func (v Visibility) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *Visibility) UnmarshalText(b []byte) error {
	i, err := visibilityNames.parse("visibility", b)
	if err != nil {
		return err
	}
	*v = Visibility(i)
	return nil
}

// StructOrClass chooses Swift value or reference types.
type StructOrClass int

const (
	Struct StructOrClass = iota
	Class
)

var structOrClassNames = enumNames{"struct", "class"}

func (v StructOrClass) String() string               { return structOrClassNames.name(int(v)) }
func (v StructOrClass) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *StructOrClass) UnmarshalText(b []byte) error {
	i, err := structOrClassNames.parse("struct or class", b)
	if err != nil {
		return err
	}
	*v = StructOrClass(i)
	return nil
}

// SwiftDensity is Swift's property density; unlike Density it defaults to dense.
type SwiftDensity int

const (
	SwiftDensityDense SwiftDensity = iota
	SwiftDensityNormal
)

var swiftDensityNames = enumNames{"dense", "normal"}

func (v SwiftDensity) String() string               { return swiftDensityNames.name(int(v)) }
func (v SwiftDensity) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *SwiftDensity) UnmarshalText(b []byte) error {
	i, err := swiftDensityNames.parse("density", b)
	if err != nil {
		return err
	}
	*v = SwiftDensity(i)
	return nil
}

// AccessLevel is the Swift access level of generated declarations.
type AccessLevel int

const (
	AccessInternal AccessLevel = iota
	AccessPublic
)

var accessLevelNames = enumNames{"internal", "public"}

func (v AccessLevel) String() string               { return accessLevelNames.name(int(v)) }
func (v AccessLevel) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *AccessLevel) UnmarshalText(b []byte) error {
	i, err := accessLevelNames.parse("access level", b)
	if err != nil {
		return err
	}
	*v = AccessLevel(i)
	return nil
}

// Protocol is the Swift protocol generated types conform to.
type Protocol int

const (
	ProtocolNone Protocol = iota
	ProtocolEquatable
	ProtocolHashable
)

var protocolNames = enumNames{"none", "equatable", "hashable"}

func (v Protocol) String() string               { return protocolNames.name(int(v)) }
func (v Protocol) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v *Protocol) UnmarshalText(b []byte) error {
	i, err := protocolNames.parse("protocol", b)
	if err != nil {
		return err
	}
	*v = Protocol(i)
	return nil
}
