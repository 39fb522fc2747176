//go:build windows

package icon

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"unsafe"

	"github.com/gotk3/gotk3/gdk"
	"golang.org/x/sys/windows"
)

// Native association icons via SHGetFileInfo, the same lookup Explorer
// uses. The HICON is rasterized through GDI into a PNG that GdkPixbuf can
// load.

const (
	shgfiIcon      = 0x000000100
	shgfiLargeIcon = 0x000000000
	shgfiSmallIcon = 0x000000001

	dibRGBColors = 0
	biRGB        = 0
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")

	procSHGetFileInfoW = shell32.NewProc("SHGetFileInfoW")
	procDestroyIcon    = user32.NewProc("DestroyIcon")
	procGetIconInfo    = user32.NewProc("GetIconInfo")
	procGetDC          = user32.NewProc("GetDC")
	procReleaseDC      = user32.NewProc("ReleaseDC")
	procGetDIBits      = gdi32.NewProc("GetDIBits")
	procGetObjectW     = gdi32.NewProc("GetObjectW")
	procDeleteObject   = gdi32.NewProc("DeleteObject")
)

type shFileInfo struct {
	HIcon         windows.Handle
	IIcon         int32
	DwAttributes  uint32
	SzDisplayName [260]uint16
	SzTypeName    [80]uint16
}

type iconInfo struct {
	FIcon    int32
	XHotspot uint32
	YHotspot uint32
	HbmMask  windows.Handle
	HbmColor windows.Handle
}

type gdiBitmap struct {
	BmType       int32
	BmWidth      int32
	BmHeight     int32
	BmWidthBytes int32
	BmPlanes     uint16
	BmBitsPixel  uint16
	BmBits       uintptr
}

type bitmapInfoHeader struct {
	BiSize          uint32
	BiWidth         int32
	BiHeight        int32
	BiPlanes        uint16
	BiBitCount      uint16
	BiCompression   uint32
	BiSizeImage     uint32
	BiXPelsPerMeter int32
	BiYPelsPerMeter int32
	BiClrUsed       uint32
	BiClrImportant  uint32
}

// shellIcon asks the Windows shell for the file's association icon.
func shellIcon(path string, size int) (*gdk.Pixbuf, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	pathPtr, err := windows.UTF16PtrFromString(abs)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	flags := uintptr(shgfiIcon | shgfiLargeIcon)
	if size <= 24 {
		flags = shgfiIcon | shgfiSmallIcon
	}

	var info shFileInfo
	ret, _, _ := procSHGetFileInfoW.Call(
		uintptr(unsafe.Pointer(pathPtr)),
		0,
		uintptr(unsafe.Pointer(&info)),
		unsafe.Sizeof(info),
		flags,
	)
	if ret == 0 || info.HIcon == 0 {
		return nil, fmt.Errorf("SHGetFileInfo returned no icon for %s", abs)
	}
	defer procDestroyIcon.Call(uintptr(info.HIcon))

	img, err := iconToImage(info.HIcon)
	if err != nil {
		return nil, err
	}

	return imageToPixbuf(img, size)
}

// iconToImage reads the icon's color bitmap into an NRGBA image.
func iconToImage(hIcon windows.Handle) (*image.NRGBA, error) {
	var ii iconInfo
	ret, _, _ := procGetIconInfo.Call(uintptr(hIcon), uintptr(unsafe.Pointer(&ii)))
	if ret == 0 {
		return nil, fmt.Errorf("GetIconInfo failed")
	}
	defer procDeleteObject.Call(uintptr(ii.HbmMask))
	defer procDeleteObject.Call(uintptr(ii.HbmColor))

	var bm gdiBitmap
	ret, _, _ = procGetObjectW.Call(uintptr(ii.HbmColor), unsafe.Sizeof(bm), uintptr(unsafe.Pointer(&bm)))
	if ret == 0 {
		return nil, fmt.Errorf("GetObject failed")
	}

	width, height := int(bm.BmWidth), int(bm.BmHeight)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("icon bitmap has no dimensions")
	}

	hdc, _, _ := procGetDC.Call(0)
	if hdc == 0 {
		return nil, fmt.Errorf("GetDC failed")
	}
	defer procReleaseDC.Call(0, hdc)

	hdr := bitmapInfoHeader{
		BiWidth:       int32(width),
		BiHeight:      -int32(height), // top-down
		BiPlanes:      1,
		BiBitCount:    32,
		BiCompression: biRGB,
	}
	hdr.BiSize = uint32(unsafe.Sizeof(hdr))

	pixels := make([]byte, width*height*4)
	ret, _, _ = procGetDIBits.Call(
		hdc,
		uintptr(ii.HbmColor),
		0,
		uintptr(height),
		uintptr(unsafe.Pointer(&pixels[0])),
		uintptr(unsafe.Pointer(&hdr)),
		dibRGBColors,
	)
	if ret == 0 {
		return nil, fmt.Errorf("GetDIBits failed")
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i+3 < len(pixels); i += 4 {
		// DIB is BGRA, image.NRGBA wants RGBA.
		img.Pix[i+0] = pixels[i+2]
		img.Pix[i+1] = pixels[i+1]
		img.Pix[i+2] = pixels[i+0]
		img.Pix[i+3] = pixels[i+3]
	}
	return img, nil
}

// imageToPixbuf round-trips the image through a temporary PNG, which is the
// one loader GdkPixbuf is guaranteed to have.
func imageToPixbuf(img *image.NRGBA, size int) (*gdk.Pixbuf, error) {
	tmp, err := os.CreateTemp("", "superlauncher-icon-*.png")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp icon file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to encode icon: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to flush icon: %w", err)
	}

	pb, err := gdk.PixbufNewFromFileAtScale(tmpPath, size, size, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load extracted icon: %w", err)
	}
	return pb, nil
}
