package codec

import (
	"testing"

	"github.com/hupe1980/kmeansgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecs_AgreeOnClusters(t *testing.T) {
	clusters := []kmeansgo.Cluster{
		{
			Centroid: kmeansgo.MustPoint(0, 0.5),
			Points:   []kmeansgo.Point{kmeansgo.MustPoint(0, 0), kmeansgo.MustPoint(0, 1)},
		},
		{
			Centroid: kmeansgo.MustPoint(10, 0.5),
			Points:   []kmeansgo.Point{kmeansgo.MustPoint(10, 0), kmeansgo.MustPoint(10, 1)},
		},
	}

	for _, c := range []Codec{JSON{}, GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(clusters)
			require.NoError(t, err)
			assert.JSONEq(t, `[
				{"centroid":[0,0.5],"points":[[0,0],[0,1]]},
				{"centroid":[10,0.5],"points":[[10,0],[10,1]]}
			]`, string(data))

			var decoded []kmeansgo.Cluster
			require.NoError(t, c.Unmarshal(data, &decoded))
			require.Len(t, decoded, 2)
			assert.True(t, decoded[1].Centroid.Equal(clusters[1].Centroid))
			assert.Equal(t, 2, decoded[0].Size())
		})
	}
}

func TestGoJSON_Append(t *testing.T) {
	out, err := GoJSON{}.Append([]byte("x="), kmeansgo.MustPoint(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "x=[1,2]", string(out))
}

func TestMustMarshal_DefaultCodec(t *testing.T) {
	assert.Equal(t, `[3]`, string(MustMarshal(nil, kmeansgo.MustPoint(3))))
}
