package source

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string]string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	body, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = string(b)
	return &s3.PutObjectOutput{}, nil
}

func TestParseObjectURL(t *testing.T) {
	u, err := ParseObjectURL("s3://evidence/cases/2021/phone.jsonld")
	require.NoError(t, err)
	assert.Equal(t, ObjectURL{Bucket: "evidence", Key: "cases/2021/phone.jsonld"}, u)
	assert.Equal(t, "s3://evidence/cases/2021/phone.jsonld", u.String())

	for _, bad := range []string{"s3://bucket", "s3:///key", "http://bucket/key"} {
		_, err := ParseObjectURL(bad)
		assert.Error(t, err, bad)
	}
}

func TestRouter(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.jsonld")
	require.NoError(t, os.WriteFile(path, []byte("local"), 0o644))

	fake := &fakeS3{objects: map[string]string{"bucket/doc.jsonld": "remote"}}
	r := Router{Objects: NewObjectsWithClient(fake)}

	read := func(loc string) string {
		rc, err := r.Open(ctx, loc)
		require.NoError(t, err)
		defer rc.Close()
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(b)
	}
	assert.Equal(t, "local", read(path))
	assert.Equal(t, "remote", read("s3://bucket/doc.jsonld"))

	_, err := r.Open(ctx, "s3://bucket/missing")
	assert.ErrorContains(t, err, "NoSuchKey")

	_, err = Router{}.Open(ctx, "s3://bucket/doc.jsonld")
	assert.ErrorContains(t, err, "not configured")

	_, err = Router{}.Open(ctx, filepath.Join(dir, "nope"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestObjectsPut(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{}}
	o := NewObjectsWithClient(fake)

	require.NoError(t, o.Put(context.Background(), "s3://out/snap.json", "application/json", strings.NewReader("{}")))
	assert.Equal(t, "{}", fake.objects["out/snap.json"])
}
