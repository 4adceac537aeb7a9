package pcd8544

// logo is the built-in 84x48 splash frame shown by ShowLogo.
var logo = [Width * Height / 8]byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8,
	0xf8, 0xfc, 0xae, 0x0e, 0x0e, 0x06, 0x0e, 0x06, 0xce, 0x86, 0x8e, 0x0e,
	0x0e, 0x1c, 0xb8, 0xf0, 0xf8, 0x78, 0x38, 0x1e, 0x0e, 0x8e, 0x8e, 0xc6,
	0x0e, 0x06, 0x0e, 0x06, 0x0e, 0x9e, 0xfe, 0xfc, 0xf8, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x03, 0x0f, 0x0f, 0xfe, 0xf8, 0xf0, 0x60, 0x60, 0xe0, 0xe1, 0xe3, 0xf7,
	0x7e, 0x3e, 0x1e, 0x1f, 0x1f, 0x1f, 0x3e, 0x7e, 0xfb, 0xf3, 0xe1, 0xe0,
	0x60, 0x70, 0xf0, 0xf8, 0xbe, 0x1f, 0x0f, 0x07, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80, 0xc0,
	0xe0, 0xfc, 0xfe, 0xff, 0xf3, 0x38, 0x38, 0x0c, 0x0e, 0x0f, 0x0f, 0x0f,
	0x0e, 0x3c, 0x38, 0xf8, 0xf8, 0x38, 0x3c, 0x0e, 0x0f, 0x0f, 0x0f, 0x0e,
	0x0c, 0x38, 0x38, 0xf3, 0xff, 0xff, 0xf8, 0xe0, 0x80, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7f, 0xff, 0xe7,
	0xc3, 0xc1, 0xe0, 0xff, 0xff, 0x78, 0xe0, 0xc0, 0xc0, 0xc0, 0xc0, 0xe0,
	0x60, 0x78, 0x38, 0x3f, 0x3f, 0x38, 0x38, 0x60, 0x60, 0xc0, 0xc0, 0xc0,
	0xc0, 0xe0, 0xf8, 0x7f, 0xff, 0xe0, 0xc1, 0xc3, 0xe7, 0x7f, 0x3e, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03,
	0x0f, 0x7f, 0xff, 0xf1, 0xe0, 0xc0, 0x80, 0x01, 0x03, 0x9f, 0xff, 0xf0,
	0xe0, 0xe0, 0xc0, 0xc0, 0xc0, 0xc0, 0xc0, 0xe0, 0xe0, 0xf0, 0xff, 0x9f,
	0x03, 0x01, 0x80, 0xc0, 0xe0, 0xf1, 0x7f, 0x1f, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x01, 0x03, 0x03, 0x07, 0x07, 0x0f, 0x1f, 0x1f, 0x3f,
	0x3b, 0x71, 0x60, 0x60, 0x60, 0x60, 0x60, 0x71, 0x3b, 0x1f, 0x0f, 0x0f,
	0x0f, 0x07, 0x03, 0x03, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}
