package metrics

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"k8s.io/klog/v2"
	"k8s.io/utils/lru"
)

// 72 DPI makes one point one pixel.
const dpi = 72

const measureCacheSize = 1024

type faceKey struct {
	typeface Typeface
	size     int
}

type measureKey struct {
	text string
	faceKey
}

// Face measures text with the Go fonts, without a display connection.
type Face struct {
	Dimens
	fonts map[Typeface]*opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
	cache *lru.Cache
}

func NewFace(dimens Dimens) (*Face, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing regular font: %w", err)
	}
	medium, err := opentype.Parse(gomedium.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing medium font: %w", err)
	}
	if dimens == nil {
		dimens = Dimens{}
	}
	return &Face{
		Dimens: dimens,
		fonts:  map[Typeface]*opentype.Font{Default: regular, Medium: medium},
		faces:  map[faceKey]font.Face{},
		cache:  lru.New(measureCacheSize),
	}, nil
}

func (f *Face) Measure(text string, size int, typeface Typeface) int {
	if text == "" || size <= 0 {
		return 0
	}
	key := measureKey{text: text, faceKey: faceKey{typeface: typeface, size: size}}
	if v, ok := f.cache.Get(key); ok {
		return v.(int)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	face, err := f.face(key.faceKey)
	if err != nil {
		klog.Errorf("creating %v face at %dpx: %v", typeface, size, err)
		return 0
	}
	width := font.MeasureString(face, text).Ceil()
	f.cache.Add(key, width)
	return width
}

func (f *Face) face(key faceKey) (font.Face, error) {
	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	ttf, ok := f.fonts[key.typeface]
	if !ok {
		ttf = f.fonts[Default]
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    float64(key.size),
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	f.faces[key] = face
	return face, nil
}

// Close releases the faces created so far.
func (f *Face) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, face := range f.faces {
		if err := face.Close(); err != nil {
			return err
		}
		delete(f.faces, key)
	}
	f.cache = lru.New(measureCacheSize)
	return nil
}
