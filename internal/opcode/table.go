package opcode

// opcodeList is the instruction set. Sizes include the opcode byte
// (and, for the wide size, the prefix byte); they must agree with the
// immediate kind widths, which the tests verify.
var opcodeList = []Info{
	{Name: "CLEAR_ACC", Code: 1, Size: 1, WideSize: 2},
	{Name: "CLEAR_FAST", Code: 2, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "ALIAS", Code: 3, Imm: []Kind{Reg, Reg}, Size: 3, WideSize: 10},
	{Name: "COPY", Code: 4, Imm: []Kind{Reg, Reg}, Size: 3, WideSize: 10, Style: StyleMove},
	{Name: "MOVE", Code: 5, Imm: []Kind{Reg, Reg}, Size: 3, WideSize: 10, Style: StyleMove},
	{Name: "FUNC_HEADER", Code: 6, Imm: []Kind{Lit}, Size: 2, WideSize: 6},
	{Name: "METHOD_HEADER", Code: 7, Size: 1, WideSize: 2},
	{Name: "CFUNC_HEADER", Code: 9, Size: 1, WideSize: 2},
	{Name: "CFUNC_HEADER_NOARGS", Code: 10, Size: 1, WideSize: 2},
	{Name: "CFUNC_HEADER_O", Code: 11, Size: 1, WideSize: 2},
	{Name: "CMETHOD_NOARGS", Code: 12, Size: 1, WideSize: 2},
	{Name: "CMETHOD_O", Code: 13, Size: 1, WideSize: 2},
	{Name: "FUNC_TPCALL_HEADER", Code: 14, Size: 1, WideSize: 2},
	{Name: "UNARY_POSITIVE", Code: 15, Size: 1, WideSize: 2},
	{Name: "UNARY_NEGATIVE", Code: 16, Size: 1, WideSize: 2},
	{Name: "UNARY_NOT", Code: 17, Size: 1, WideSize: 2},
	{Name: "UNARY_NOT_FAST", Code: 18, Size: 1, WideSize: 2},
	{Name: "UNARY_INVERT", Code: 19, Size: 1, WideSize: 2},
	{Name: "BINARY_MATRIX_MULTIPLY", Code: 20, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_POWER", Code: 21, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_MULTIPLY", Code: 22, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_MODULO", Code: 23, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_ADD", Code: 24, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_SUBTRACT", Code: 25, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_SUBSCR", Code: 26, Imm: []Kind{Reg}, Size: 2, WideSize: 6, Style: StyleSubscrLoad},
	{Name: "BINARY_FLOOR_DIVIDE", Code: 27, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_TRUE_DIVIDE", Code: 28, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_LSHIFT", Code: 29, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_RSHIFT", Code: 30, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_AND", Code: 31, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_XOR", Code: 32, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BINARY_OR", Code: 33, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "IS_OP", Code: 34, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "CONTAINS_OP", Code: 35, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "COMPARE_OP", Code: 36, Imm: []Kind{Lit, Reg}, Size: 3, WideSize: 10},
	{Name: "INPLACE_FLOOR_DIVIDE", Code: 37, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_TRUE_DIVIDE", Code: 38, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_ADD", Code: 39, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_SUBTRACT", Code: 40, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_MULTIPLY", Code: 41, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_LSHIFT", Code: 42, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_RSHIFT", Code: 43, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_AND", Code: 44, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_XOR", Code: 45, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_OR", Code: 46, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_MODULO", Code: 47, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_MATRIX_MULTIPLY", Code: 48, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "INPLACE_POWER", Code: 49, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "LOAD_FAST", Code: 50, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "LOAD_NAME", Code: 51, Imm: []Kind{Name, Lit}, Size: 3, WideSize: 10},
	{Name: "LOAD_CONST", Code: 52, Imm: []Kind{Const}, Size: 2, WideSize: 6},
	{Name: "LOAD_ATTR", Code: 53, Imm: []Kind{Reg, Name, Lit}, Size: 4, WideSize: 14, Style: StyleAttrLoad},
	{Name: "LOAD_GLOBAL", Code: 54, Imm: []Kind{Name, Lit}, Size: 3, WideSize: 10},
	{Name: "LOAD_METHOD", Code: 55, Imm: []Kind{Reg, Name, Lit}, Size: 4, WideSize: 14, Style: StyleAttrLoad},
	{Name: "LOAD_DEREF", Code: 56, Imm: []Kind{Cell}, Size: 2, WideSize: 6},
	{Name: "LOAD_CLASSDEREF", Code: 57, Imm: []Kind{Cell, Name}, Size: 3, WideSize: 10},
	{Name: "STORE_FAST", Code: 58, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "STORE_NAME", Code: 59, Imm: []Kind{Name}, Size: 2, WideSize: 6},
	{Name: "STORE_ATTR", Code: 60, Imm: []Kind{Reg, Name}, Size: 3, WideSize: 10, Style: StyleAttrStore},
	{Name: "STORE_GLOBAL", Code: 61, Imm: []Kind{Name}, Size: 2, WideSize: 6},
	{Name: "STORE_SUBSCR", Code: 62, Imm: []Kind{Reg, Reg}, Size: 3, WideSize: 10, Style: StyleSubscrStore},
	{Name: "STORE_DEREF", Code: 63, Imm: []Kind{Cell}, Size: 2, WideSize: 6},
	{Name: "DELETE_FAST", Code: 64, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "DELETE_NAME", Code: 65, Imm: []Kind{Name}, Size: 2, WideSize: 6},
	{Name: "DELETE_ATTR", Code: 66, Imm: []Kind{Name}, Size: 2, WideSize: 6},
	{Name: "DELETE_GLOBAL", Code: 67, Imm: []Kind{Name}, Size: 2, WideSize: 6},
	{Name: "DELETE_SUBSCR", Code: 68, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "DELETE_DEREF", Code: 69, Imm: []Kind{Cell}, Size: 2, WideSize: 6},
	{Name: "CALL_FUNCTION", Code: 70, Imm: []Kind{Base, Imm16}, Size: 4, WideSize: 8, Style: StyleCall},
	{Name: "CALL_FUNCTION_EX", Code: 71, Imm: []Kind{Base}, Size: 2, WideSize: 6},
	{Name: "CALL_METHOD", Code: 72, Imm: []Kind{Base, Imm16}, Size: 4, WideSize: 8, Style: StyleCall},
	{Name: "CALL_INTRINSIC_1", Code: 73, Imm: []Kind{Intrinsic}, Size: 2, WideSize: 6},
	{Name: "CALL_INTRINSIC_N", Code: 74, Imm: []Kind{Intrinsic, Base, Lit}, Size: 4, WideSize: 14},
	{Name: "RETURN_VALUE", Code: 75, Size: 1, WideSize: 2},
	{Name: "RAISE", Code: 76, Size: 1, WideSize: 2},
	{Name: "YIELD_VALUE", Code: 77, Size: 1, WideSize: 2},
	{Name: "YIELD_FROM", Code: 78, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "JUMP", Code: 79, Imm: []Kind{Jump}, Size: 3, WideSize: 6, Branch: true},
	{Name: "JUMP_IF_FALSE", Code: 80, Imm: []Kind{Jump}, Size: 3, WideSize: 6, Branch: true},
	{Name: "JUMP_IF_TRUE", Code: 81, Imm: []Kind{Jump}, Size: 3, WideSize: 6, Branch: true},
	{Name: "JUMP_IF_NOT_EXC_MATCH", Code: 82, Imm: []Kind{Reg, Jump}, Size: 4, WideSize: 10, Branch: true},
	{Name: "POP_JUMP_IF_FALSE", Code: 83, Imm: []Kind{Jump}, Size: 3, WideSize: 6, Branch: true},
	{Name: "POP_JUMP_IF_TRUE", Code: 84, Imm: []Kind{Jump}, Size: 3, WideSize: 6, Branch: true},
	{Name: "GET_ITER", Code: 85, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "GET_YIELD_FROM_ITER", Code: 86, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "FOR_ITER", Code: 87, Imm: []Kind{Reg, Jump}, Size: 4, WideSize: 10, Branch: true},
	{Name: "IMPORT_NAME", Code: 88, Imm: []Kind{Name}, Size: 2, WideSize: 6},
	{Name: "IMPORT_FROM", Code: 89, Imm: []Kind{Reg, Name}, Size: 3, WideSize: 10},
	{Name: "IMPORT_STAR", Code: 90, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BUILD_SLICE", Code: 91, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "BUILD_TUPLE", Code: 92, Imm: []Kind{Reg, Lit}, Size: 3, WideSize: 10},
	{Name: "BUILD_LIST", Code: 93, Imm: []Kind{Reg, Lit}, Size: 3, WideSize: 10},
	{Name: "BUILD_SET", Code: 94, Imm: []Kind{Reg, Lit}, Size: 3, WideSize: 10},
	{Name: "BUILD_MAP", Code: 95, Imm: []Kind{Lit}, Size: 2, WideSize: 6},
	{Name: "END_EXCEPT", Code: 96, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "CALL_FINALLY", Code: 97, Imm: []Kind{Reg, Jump}, Size: 4, WideSize: 10, Branch: true},
	{Name: "END_FINALLY", Code: 98, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "LOAD_BUILD_CLASS", Code: 99, Size: 1, WideSize: 2},
	{Name: "GET_AWAITABLE", Code: 100, Imm: []Kind{Reg, Lit}, Size: 3, WideSize: 10},
	{Name: "GET_AITER", Code: 101, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "GET_ANEXT", Code: 102, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "END_ASYNC_WITH", Code: 103, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "END_ASYNC_FOR", Code: 104, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "UNPACK", Code: 105, Imm: []Kind{Base, Lit, Lit}, Size: 4, WideSize: 14, Style: StyleUnpack},
	{Name: "MAKE_FUNCTION", Code: 106, Imm: []Kind{Const}, Size: 2, WideSize: 6},
	{Name: "SETUP_WITH", Code: 107, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "END_WITH", Code: 108, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "SETUP_ASYNC_WITH", Code: 109, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "LIST_EXTEND", Code: 110, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "LIST_APPEND", Code: 111, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "SET_ADD", Code: 112, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "SET_UPDATE", Code: 113, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "DICT_MERGE", Code: 114, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "DICT_UPDATE", Code: 115, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "SETUP_ANNOTATIONS", Code: 116, Size: 1, WideSize: 2},
	{Name: "SET_FUNC_ANNOTATIONS", Code: 117, Imm: []Kind{Reg}, Size: 2, WideSize: 6},
	{Name: "WIDE", Code: Wide, Size: 1, WideSize: 2},
}

// intrinsicNames maps intrinsic indices to runtime function names.
// Index 0 is unused.
var intrinsicNames = []string{
	"",
	"PyObject_Str",
	"PyObject_Repr",
	"PyObject_ASCII",
	"vm_format_value",
	"vm_format_value_spec",
	"vm_build_string",
	"PyList_AsTuple",
	"vm_raise_assertion_error",
	"vm_exc_set_cause",
	"vm_print",
	"_PyAsyncGenValueWrapperNew",
}
