package osd

// MOV EAX, 42; RET
var return42 = []byte{0xb8, 0x2a, 0x00, 0x00, 0x00, 0xc3}
