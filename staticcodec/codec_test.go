package staticcodec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fcp-project/fcp-codec/primitive"
	"github.com/fcp-project/fcp-codec/schema"
	"github.com/fcp-project/fcp-codec/staticcodec"
	"github.com/fcp-project/fcp-codec/valuetree"
)

func engineTempDescriptor() schema.Descriptor {
	return schema.Struct(
		schema.StructField{Name: "rpm", Descriptor: schema.Primitive(primitive.Unsigned(16))},
		schema.StructField{Name: "temp", Descriptor: schema.Primitive(primitive.Signed(8))},
	)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	c := staticcodec.New()
	c.RegisterType("EngineTemp", engineTempDescriptor())

	v := valuetree.Map(map[string]valuetree.Value{
		"rpm":  valuetree.Uint64(3000),
		"temp": valuetree.Int64(-5),
	})

	data, err := c.Encode("EngineTemp", v)
	require.NoError(t, err)
	require.Len(t, data, 3)

	decoded, err := c.Decode("EngineTemp", data)
	require.NoError(t, err)

	rpm, _ := decoded.Field("rpm")
	temp, _ := decoded.Field("temp")
	require.Equal(t, uint64(3000), rpm.AsUint64())
	require.Equal(t, int64(-5), temp.AsInt64())
}

func TestEncode_UnknownType(t *testing.T) {
	c := staticcodec.New()

	_, err := c.Encode("Nope", valuetree.Null())
	require.Error(t, err)
}

func TestLookupTables(t *testing.T) {
	c := staticcodec.New()
	c.RegisterType("EngineTemp", engineTempDescriptor())
	c.RegisterImplementation("EngineTemp", "can0", 0x100)

	name, ok := c.NameFor("can0", 0x100)
	require.True(t, ok)
	require.Equal(t, "EngineTemp", name)

	id, ok := c.IDFor("EngineTemp")
	require.True(t, ok)
	require.Equal(t, uint16(0x100), id)

	bus, ok := c.BusFor("EngineTemp")
	require.True(t, ok)
	require.Equal(t, "can0", bus)

	_, ok = c.NameFor("can0", 0x200)
	require.False(t, ok)
}

func TestNew_WithCapacityOptions(t *testing.T) {
	c := staticcodec.New(
		staticcodec.WithTypeCapacity(32),
		staticcodec.WithImplCapacity(32),
	)
	c.RegisterType("EngineTemp", engineTempDescriptor())
	c.RegisterImplementation("EngineTemp", "can0", 0x100)

	_, ok := c.IDFor("EngineTemp")
	require.True(t, ok)
}
