package spirv

// OpInfo describes one opcode's operand shape: the facts the SMOL-V
// codec needs to pick an encoding for each operand word, and nothing
// more.
type OpInfo struct {
	// Name is the opcode name without the "Op" prefix.
	Name string

	// HasResult reports whether the instruction creates a result ID.
	HasResult bool

	// HasType reports whether the instruction has a result type ID.
	// Always paired with HasResult; the type word precedes the result
	// word.
	HasType bool

	// RelIDs is how many operand words after the result are IDs stored
	// relative to the most recent result ID. An upper bound: short
	// instructions use fewer.
	RelIDs int

	// ZigzagIDs selects the signed (zigzag) delta form for the
	// relative IDs. Used by control-flow opcodes whose IDs may
	// reference forward; everything else references backward and keeps
	// the plain form.
	ZigzagIDs bool

	// VarRest reports whether operand words after the relative IDs are
	// stored as varints rather than raw words.
	VarRest bool
}

// Lookup returns the operand shape for op. The second result is false
// for opcode values outside the known core set, including reserved
// gaps; such opcodes carry the zero shape and their operands stay raw.
func Lookup(op Op) (OpInfo, bool) {
	info, ok := table[op]
	return info, ok
}

// table covers the SPIR-V 1.x core opcode set. Fields are
// name, result, type, relative IDs, zigzag, varint rest.
var table = map[Op]OpInfo{
	// Miscellaneous
	OpNop:   {"Nop", false, false, 0, false, false},
	OpUndef: {"Undef", true, true, 0, false, false},

	// Debug
	OpSourceContinued: {"SourceContinued", false, false, 0, false, false},
	OpSource:          {"Source", false, false, 0, false, true},
	OpSourceExtension: {"SourceExtension", false, false, 0, false, false},
	OpName:            {"Name", false, false, 0, false, false},
	OpMemberName:      {"MemberName", false, false, 0, false, false},
	OpString:          {"String", true, false, 0, false, false},
	OpLine:            {"Line", false, false, 0, false, true},

	// Extension
	OpExtension:     {"Extension", false, false, 0, false, false},
	OpExtInstImport: {"ExtInstImport", true, false, 0, false, false},
	OpExtInst:       {"ExtInst", true, true, 0, false, true},

	// Mode-setting
	OpMemoryModel:   {"MemoryModel", false, false, 0, false, true},
	OpEntryPoint:    {"EntryPoint", false, false, 0, false, true},
	OpExecutionMode: {"ExecutionMode", false, false, 0, false, true},
	OpCapability:    {"Capability", false, false, 0, false, true},

	// Type-declaration
	OpTypeVoid:           {"TypeVoid", true, false, 0, false, true},
	OpTypeBool:           {"TypeBool", true, false, 0, false, true},
	OpTypeInt:            {"TypeInt", true, false, 0, false, true},
	OpTypeFloat:          {"TypeFloat", true, false, 0, false, true},
	OpTypeVector:         {"TypeVector", true, false, 0, false, true},
	OpTypeMatrix:         {"TypeMatrix", true, false, 0, false, true},
	OpTypeImage:          {"TypeImage", true, false, 0, false, true},
	OpTypeSampler:        {"TypeSampler", true, false, 0, false, true},
	OpTypeSampledImage:   {"TypeSampledImage", true, false, 0, false, true},
	OpTypeArray:          {"TypeArray", true, false, 0, false, true},
	OpTypeRuntimeArray:   {"TypeRuntimeArray", true, false, 0, false, true},
	OpTypeStruct:         {"TypeStruct", true, false, 0, false, true},
	OpTypeOpaque:         {"TypeOpaque", true, false, 0, false, true},
	OpTypePointer:        {"TypePointer", true, false, 0, false, true},
	OpTypeFunction:       {"TypeFunction", true, false, 0, false, true},
	OpTypeEvent:          {"TypeEvent", true, false, 0, false, true},
	OpTypeDeviceEvent:    {"TypeDeviceEvent", true, false, 0, false, true},
	OpTypeReserveId:      {"TypeReserveId", true, false, 0, false, true},
	OpTypeQueue:          {"TypeQueue", true, false, 0, false, true},
	OpTypePipe:           {"TypePipe", true, false, 0, false, true},
	OpTypeForwardPointer: {"TypeForwardPointer", false, false, 0, false, true},

	// Constant-creation
	OpConstantTrue:          {"ConstantTrue", true, true, 0, false, false},
	OpConstantFalse:         {"ConstantFalse", true, true, 0, false, false},
	OpConstant:              {"Constant", true, true, 0, false, true},
	OpConstantComposite:     {"ConstantComposite", true, true, 9, false, false},
	OpConstantSampler:       {"ConstantSampler", true, true, 0, false, true},
	OpConstantNull:          {"ConstantNull", true, true, 0, false, false},
	OpSpecConstantTrue:      {"SpecConstantTrue", true, true, 0, false, false},
	OpSpecConstantFalse:     {"SpecConstantFalse", true, true, 0, false, false},
	OpSpecConstant:          {"SpecConstant", true, true, 0, false, true},
	OpSpecConstantComposite: {"SpecConstantComposite", true, true, 9, false, false},
	OpSpecConstantOp:        {"SpecConstantOp", true, true, 0, false, true},

	// Function
	OpFunction:          {"Function", true, true, 0, false, true},
	OpFunctionParameter: {"FunctionParameter", true, true, 0, false, false},
	OpFunctionEnd:       {"FunctionEnd", false, false, 0, false, false},
	OpFunctionCall:      {"FunctionCall", true, true, 9, false, false},

	// Memory
	OpVariable:               {"Variable", true, true, 0, false, true},
	OpImageTexelPointer:      {"ImageTexelPointer", true, true, 3, false, false},
	OpLoad:                   {"Load", true, true, 1, false, true},
	OpStore:                  {"Store", false, false, 2, false, true},
	OpCopyMemory:             {"CopyMemory", false, false, 2, false, true},
	OpCopyMemorySized:        {"CopyMemorySized", false, false, 3, false, true},
	OpAccessChain:            {"AccessChain", true, true, 1, false, true},
	OpInBoundsAccessChain:    {"InBoundsAccessChain", true, true, 1, false, true},
	OpPtrAccessChain:         {"PtrAccessChain", true, true, 2, false, true},
	OpArrayLength:            {"ArrayLength", true, true, 1, false, true},
	OpGenericPtrMemSemantics: {"GenericPtrMemSemantics", true, true, 1, false, false},
	OpInBoundsPtrAccessChain: {"InBoundsPtrAccessChain", true, true, 2, false, true},

	// Annotation
	OpDecorate:            {"Decorate", false, false, 0, false, true},
	OpMemberDecorate:      {"MemberDecorate", false, false, 0, false, true},
	OpDecorationGroup:     {"DecorationGroup", true, false, 0, false, false},
	OpGroupDecorate:       {"GroupDecorate", false, false, 0, false, true},
	OpGroupMemberDecorate: {"GroupMemberDecorate", false, false, 0, false, true},

	// Composite
	OpVectorExtractDynamic: {"VectorExtractDynamic", true, true, 2, false, false},
	OpVectorInsertDynamic:  {"VectorInsertDynamic", true, true, 3, false, false},
	OpVectorShuffle:        {"VectorShuffle", true, true, 2, false, true},
	OpCompositeConstruct:   {"CompositeConstruct", true, true, 9, false, false},
	OpCompositeExtract:     {"CompositeExtract", true, true, 1, false, true},
	OpCompositeInsert:      {"CompositeInsert", true, true, 2, false, true},
	OpCopyObject:           {"CopyObject", true, true, 1, false, false},
	OpTranspose:            {"Transpose", true, true, 1, false, false},

	// Image
	OpSampledImage:                   {"SampledImage", true, true, 2, false, false},
	OpImageSampleImplicitLod:         {"ImageSampleImplicitLod", true, true, 2, false, true},
	OpImageSampleExplicitLod:         {"ImageSampleExplicitLod", true, true, 2, false, true},
	OpImageSampleDrefImplicitLod:     {"ImageSampleDrefImplicitLod", true, true, 3, false, true},
	OpImageSampleDrefExplicitLod:     {"ImageSampleDrefExplicitLod", true, true, 3, false, true},
	OpImageSampleProjImplicitLod:     {"ImageSampleProjImplicitLod", true, true, 2, false, true},
	OpImageSampleProjExplicitLod:     {"ImageSampleProjExplicitLod", true, true, 2, false, true},
	OpImageSampleProjDrefImplicitLod: {"ImageSampleProjDrefImplicitLod", true, true, 3, false, true},
	OpImageSampleProjDrefExplicitLod: {"ImageSampleProjDrefExplicitLod", true, true, 3, false, true},
	OpImageFetch:                     {"ImageFetch", true, true, 2, false, true},
	OpImageGather:                    {"ImageGather", true, true, 3, false, true},
	OpImageDrefGather:                {"ImageDrefGather", true, true, 3, false, true},
	OpImageRead:                      {"ImageRead", true, true, 2, false, true},
	OpImageWrite:                     {"ImageWrite", false, false, 3, false, true},
	OpImage:                          {"Image", true, true, 1, false, false},
	OpImageQueryFormat:               {"ImageQueryFormat", true, true, 1, false, false},
	OpImageQueryOrder:                {"ImageQueryOrder", true, true, 1, false, false},
	OpImageQuerySizeLod:              {"ImageQuerySizeLod", true, true, 2, false, false},
	OpImageQuerySize:                 {"ImageQuerySize", true, true, 1, false, false},
	OpImageQueryLod:                  {"ImageQueryLod", true, true, 2, false, false},
	OpImageQueryLevels:               {"ImageQueryLevels", true, true, 1, false, false},
	OpImageQuerySamples:              {"ImageQuerySamples", true, true, 1, false, false},

	// Conversion
	OpConvertFToU:              {"ConvertFToU", true, true, 1, false, false},
	OpConvertFToS:              {"ConvertFToS", true, true, 1, false, false},
	OpConvertSToF:              {"ConvertSToF", true, true, 1, false, false},
	OpConvertUToF:              {"ConvertUToF", true, true, 1, false, false},
	OpUConvert:                 {"UConvert", true, true, 1, false, false},
	OpSConvert:                 {"SConvert", true, true, 1, false, false},
	OpFConvert:                 {"FConvert", true, true, 1, false, false},
	OpQuantizeToF16:            {"QuantizeToF16", true, true, 1, false, false},
	OpConvertPtrToU:            {"ConvertPtrToU", true, true, 1, false, false},
	OpSatConvertSToU:           {"SatConvertSToU", true, true, 1, false, false},
	OpSatConvertUToS:           {"SatConvertUToS", true, true, 1, false, false},
	OpConvertUToPtr:            {"ConvertUToPtr", true, true, 1, false, false},
	OpPtrCastToGeneric:         {"PtrCastToGeneric", true, true, 1, false, false},
	OpGenericCastToPtr:         {"GenericCastToPtr", true, true, 1, false, false},
	OpGenericCastToPtrExplicit: {"GenericCastToPtrExplicit", true, true, 1, false, true},
	OpBitcast:                  {"Bitcast", true, true, 1, false, false},

	// Arithmetic
	OpSNegate:           {"SNegate", true, true, 1, false, false},
	OpFNegate:           {"FNegate", true, true, 1, false, false},
	OpIAdd:              {"IAdd", true, true, 2, false, false},
	OpFAdd:              {"FAdd", true, true, 2, false, false},
	OpISub:              {"ISub", true, true, 2, false, false},
	OpFSub:              {"FSub", true, true, 2, false, false},
	OpIMul:              {"IMul", true, true, 2, false, false},
	OpFMul:              {"FMul", true, true, 2, false, false},
	OpUDiv:              {"UDiv", true, true, 2, false, false},
	OpSDiv:              {"SDiv", true, true, 2, false, false},
	OpFDiv:              {"FDiv", true, true, 2, false, false},
	OpUMod:              {"UMod", true, true, 2, false, false},
	OpSRem:              {"SRem", true, true, 2, false, false},
	OpSMod:              {"SMod", true, true, 2, false, false},
	OpFRem:              {"FRem", true, true, 2, false, false},
	OpFMod:              {"FMod", true, true, 2, false, false},
	OpVectorTimesScalar: {"VectorTimesScalar", true, true, 2, false, false},
	OpMatrixTimesScalar: {"MatrixTimesScalar", true, true, 2, false, false},
	OpVectorTimesMatrix: {"VectorTimesMatrix", true, true, 2, false, false},
	OpMatrixTimesVector: {"MatrixTimesVector", true, true, 2, false, false},
	OpMatrixTimesMatrix: {"MatrixTimesMatrix", true, true, 2, false, false},
	OpOuterProduct:      {"OuterProduct", true, true, 2, false, false},
	OpDot:               {"Dot", true, true, 2, false, false},
	OpIAddCarry:         {"IAddCarry", true, true, 2, false, false},
	OpISubBorrow:        {"ISubBorrow", true, true, 2, false, false},
	OpUMulExtended:      {"UMulExtended", true, true, 2, false, false},
	OpSMulExtended:      {"SMulExtended", true, true, 2, false, false},

	// Relational and logical
	OpAny:                    {"Any", true, true, 1, false, false},
	OpAll:                    {"All", true, true, 1, false, false},
	OpIsNan:                  {"IsNan", true, true, 1, false, false},
	OpIsInf:                  {"IsInf", true, true, 1, false, false},
	OpIsFinite:               {"IsFinite", true, true, 1, false, false},
	OpIsNormal:               {"IsNormal", true, true, 1, false, false},
	OpSignBitSet:             {"SignBitSet", true, true, 1, false, false},
	OpLessOrGreater:          {"LessOrGreater", true, true, 2, false, false},
	OpOrdered:                {"Ordered", true, true, 2, false, false},
	OpUnordered:              {"Unordered", true, true, 2, false, false},
	OpLogicalEqual:           {"LogicalEqual", true, true, 2, false, false},
	OpLogicalNotEqual:        {"LogicalNotEqual", true, true, 2, false, false},
	OpLogicalOr:              {"LogicalOr", true, true, 2, false, false},
	OpLogicalAnd:             {"LogicalAnd", true, true, 2, false, false},
	OpLogicalNot:             {"LogicalNot", true, true, 1, false, false},
	OpSelect:                 {"Select", true, true, 3, false, false},
	OpIEqual:                 {"IEqual", true, true, 2, false, false},
	OpINotEqual:              {"INotEqual", true, true, 2, false, false},
	OpUGreaterThan:           {"UGreaterThan", true, true, 2, false, false},
	OpSGreaterThan:           {"SGreaterThan", true, true, 2, false, false},
	OpUGreaterThanEqual:      {"UGreaterThanEqual", true, true, 2, false, false},
	OpSGreaterThanEqual:      {"SGreaterThanEqual", true, true, 2, false, false},
	OpULessThan:              {"ULessThan", true, true, 2, false, false},
	OpSLessThan:              {"SLessThan", true, true, 2, false, false},
	OpULessThanEqual:         {"ULessThanEqual", true, true, 2, false, false},
	OpSLessThanEqual:         {"SLessThanEqual", true, true, 2, false, false},
	OpFOrdEqual:              {"FOrdEqual", true, true, 2, false, false},
	OpFUnordEqual:            {"FUnordEqual", true, true, 2, false, false},
	OpFOrdNotEqual:           {"FOrdNotEqual", true, true, 2, false, false},
	OpFUnordNotEqual:         {"FUnordNotEqual", true, true, 2, false, false},
	OpFOrdLessThan:           {"FOrdLessThan", true, true, 2, false, false},
	OpFUnordLessThan:         {"FUnordLessThan", true, true, 2, false, false},
	OpFOrdGreaterThan:        {"FOrdGreaterThan", true, true, 2, false, false},
	OpFUnordGreaterThan:      {"FUnordGreaterThan", true, true, 2, false, false},
	OpFOrdLessThanEqual:      {"FOrdLessThanEqual", true, true, 2, false, false},
	OpFUnordLessThanEqual:    {"FUnordLessThanEqual", true, true, 2, false, false},
	OpFOrdGreaterThanEqual:   {"FOrdGreaterThanEqual", true, true, 2, false, false},
	OpFUnordGreaterThanEqual: {"FUnordGreaterThanEqual", true, true, 2, false, false},

	// Bit
	OpShiftRightLogical:    {"ShiftRightLogical", true, true, 2, false, false},
	OpShiftRightArithmetic: {"ShiftRightArithmetic", true, true, 2, false, false},
	OpShiftLeftLogical:     {"ShiftLeftLogical", true, true, 2, false, false},
	OpBitwiseOr:            {"BitwiseOr", true, true, 2, false, false},
	OpBitwiseXor:           {"BitwiseXor", true, true, 2, false, false},
	OpBitwiseAnd:           {"BitwiseAnd", true, true, 2, false, false},
	OpNot:                  {"Not", true, true, 1, false, false},
	OpBitFieldInsert:       {"BitFieldInsert", true, true, 4, false, false},
	OpBitFieldSExtract:     {"BitFieldSExtract", true, true, 3, false, false},
	OpBitFieldUExtract:     {"BitFieldUExtract", true, true, 3, false, false},
	OpBitReverse:           {"BitReverse", true, true, 1, false, false},
	OpBitCount:             {"BitCount", true, true, 1, false, false},

	// Derivative
	OpDPdx:         {"DPdx", true, true, 1, false, false},
	OpDPdy:         {"DPdy", true, true, 1, false, false},
	OpFwidth:       {"Fwidth", true, true, 1, false, false},
	OpDPdxFine:     {"DPdxFine", true, true, 1, false, false},
	OpDPdyFine:     {"DPdyFine", true, true, 1, false, false},
	OpFwidthFine:   {"FwidthFine", true, true, 1, false, false},
	OpDPdxCoarse:   {"DPdxCoarse", true, true, 1, false, false},
	OpDPdyCoarse:   {"DPdyCoarse", true, true, 1, false, false},
	OpFwidthCoarse: {"FwidthCoarse", true, true, 1, false, false},

	// Primitive
	OpEmitVertex:         {"EmitVertex", false, false, 0, false, false},
	OpEndPrimitive:       {"EndPrimitive", false, false, 0, false, false},
	OpEmitStreamVertex:   {"EmitStreamVertex", false, false, 1, false, false},
	OpEndStreamPrimitive: {"EndStreamPrimitive", false, false, 1, false, false},

	// Barrier
	OpControlBarrier:         {"ControlBarrier", false, false, 3, false, false},
	OpMemoryBarrier:          {"MemoryBarrier", false, false, 2, false, false},
	OpNamedBarrierInitialize: {"NamedBarrierInitialize", true, true, 1, false, false},
	OpMemoryNamedBarrier:     {"MemoryNamedBarrier", false, false, 3, false, false},

	// Atomic
	OpAtomicLoad:                {"AtomicLoad", true, true, 3, false, false},
	OpAtomicStore:               {"AtomicStore", false, false, 4, false, false},
	OpAtomicExchange:            {"AtomicExchange", true, true, 4, false, false},
	OpAtomicCompareExchange:     {"AtomicCompareExchange", true, true, 6, false, false},
	OpAtomicCompareExchangeWeak: {"AtomicCompareExchangeWeak", true, true, 6, false, false},
	OpAtomicIIncrement:          {"AtomicIIncrement", true, true, 3, false, false},
	OpAtomicIDecrement:          {"AtomicIDecrement", true, true, 3, false, false},
	OpAtomicIAdd:                {"AtomicIAdd", true, true, 4, false, false},
	OpAtomicISub:                {"AtomicISub", true, true, 4, false, false},
	OpAtomicSMin:                {"AtomicSMin", true, true, 4, false, false},
	OpAtomicUMin:                {"AtomicUMin", true, true, 4, false, false},
	OpAtomicSMax:                {"AtomicSMax", true, true, 4, false, false},
	OpAtomicUMax:                {"AtomicUMax", true, true, 4, false, false},
	OpAtomicAnd:                 {"AtomicAnd", true, true, 4, false, false},
	OpAtomicOr:                  {"AtomicOr", true, true, 4, false, false},
	OpAtomicXor:                 {"AtomicXor", true, true, 4, false, false},
	OpAtomicFlagTestAndSet:      {"AtomicFlagTestAndSet", true, true, 3, false, false},
	OpAtomicFlagClear:           {"AtomicFlagClear", false, false, 3, false, false},

	// Control flow
	OpPhi:               {"Phi", true, true, 9, true, false},
	OpLoopMerge:         {"LoopMerge", false, false, 2, true, true},
	OpSelectionMerge:    {"SelectionMerge", false, false, 1, true, true},
	OpLabel:             {"Label", true, false, 0, false, false},
	OpBranch:            {"Branch", false, false, 1, true, false},
	OpBranchConditional: {"BranchConditional", false, false, 3, true, true},
	OpSwitch:            {"Switch", false, false, 2, true, true},
	OpKill:              {"Kill", false, false, 0, false, false},
	OpReturn:            {"Return", false, false, 0, false, false},
	OpReturnValue:       {"ReturnValue", false, false, 1, false, false},
	OpUnreachable:       {"Unreachable", false, false, 0, false, false},
	OpLifetimeStart:     {"LifetimeStart", false, false, 1, false, true},
	OpLifetimeStop:      {"LifetimeStop", false, false, 1, false, true},

	// Group
	OpGroupAsyncCopy:  {"GroupAsyncCopy", true, true, 0, false, true},
	OpGroupWaitEvents: {"GroupWaitEvents", false, false, 0, false, true},
	OpGroupAll:        {"GroupAll", true, true, 2, false, false},
	OpGroupAny:        {"GroupAny", true, true, 2, false, false},
	OpGroupBroadcast:  {"GroupBroadcast", true, true, 3, false, false},
	OpGroupIAdd:       {"GroupIAdd", true, true, 1, false, true},
	OpGroupFAdd:       {"GroupFAdd", true, true, 1, false, true},
	OpGroupFMin:       {"GroupFMin", true, true, 1, false, true},
	OpGroupUMin:       {"GroupUMin", true, true, 1, false, true},
	OpGroupSMin:       {"GroupSMin", true, true, 1, false, true},
	OpGroupFMax:       {"GroupFMax", true, true, 1, false, true},
	OpGroupUMax:       {"GroupUMax", true, true, 1, false, true},
	OpGroupSMax:       {"GroupSMax", true, true, 1, false, true},

	// Pipe
	OpReadPipe:                     {"ReadPipe", true, true, 0, false, true},
	OpWritePipe:                    {"WritePipe", true, true, 0, false, true},
	OpReservedReadPipe:             {"ReservedReadPipe", true, true, 0, false, true},
	OpReservedWritePipe:            {"ReservedWritePipe", true, true, 0, false, true},
	OpReserveReadPipePackets:       {"ReserveReadPipePackets", true, true, 0, false, true},
	OpReserveWritePipePackets:      {"ReserveWritePipePackets", true, true, 0, false, true},
	OpCommitReadPipe:               {"CommitReadPipe", false, false, 0, false, true},
	OpCommitWritePipe:              {"CommitWritePipe", false, false, 0, false, true},
	OpIsValidReserveId:             {"IsValidReserveId", true, true, 0, false, true},
	OpGetNumPipePackets:            {"GetNumPipePackets", true, true, 0, false, true},
	OpGetMaxPipePackets:            {"GetMaxPipePackets", true, true, 0, false, true},
	OpGroupReserveReadPipePackets:  {"GroupReserveReadPipePackets", true, true, 0, false, true},
	OpGroupReserveWritePipePackets: {"GroupReserveWritePipePackets", true, true, 0, false, true},
	OpGroupCommitReadPipe:          {"GroupCommitReadPipe", false, false, 0, false, true},
	OpGroupCommitWritePipe:         {"GroupCommitWritePipe", false, false, 0, false, true},

	// Device-side enqueue
	OpEnqueueMarker:                           {"EnqueueMarker", true, true, 0, false, true},
	OpEnqueueKernel:                           {"EnqueueKernel", true, true, 0, false, true},
	OpGetKernelNDrangeSubGroupCount:           {"GetKernelNDrangeSubGroupCount", true, true, 0, false, true},
	OpGetKernelNDrangeMaxSubGroupSize:         {"GetKernelNDrangeMaxSubGroupSize", true, true, 0, false, true},
	OpGetKernelWorkGroupSize:                  {"GetKernelWorkGroupSize", true, true, 0, false, true},
	OpGetKernelPreferredWorkGroupSizeMultiple: {"GetKernelPreferredWorkGroupSizeMultiple", true, true, 0, false, true},
	OpRetainEvent:                             {"RetainEvent", false, false, 1, false, false},
	OpReleaseEvent:                            {"ReleaseEvent", false, false, 1, false, false},
	OpCreateUserEvent:                         {"CreateUserEvent", true, true, 0, false, false},
	OpIsValidEvent:                            {"IsValidEvent", true, true, 1, false, false},
	OpSetUserEventStatus:                      {"SetUserEventStatus", false, false, 2, false, false},
	OpCaptureEventProfilingInfo:               {"CaptureEventProfilingInfo", false, false, 3, false, false},
	OpGetDefaultQueue:                         {"GetDefaultQueue", true, true, 0, false, false},
	OpBuildNDRange:                            {"BuildNDRange", true, true, 3, false, false},

	// Sparse image
	OpImageSparseSampleImplicitLod:         {"ImageSparseSampleImplicitLod", true, true, 2, false, true},
	OpImageSparseSampleExplicitLod:         {"ImageSparseSampleExplicitLod", true, true, 2, false, true},
	OpImageSparseSampleDrefImplicitLod:     {"ImageSparseSampleDrefImplicitLod", true, true, 3, false, true},
	OpImageSparseSampleDrefExplicitLod:     {"ImageSparseSampleDrefExplicitLod", true, true, 3, false, true},
	OpImageSparseSampleProjImplicitLod:     {"ImageSparseSampleProjImplicitLod", true, true, 2, false, true},
	OpImageSparseSampleProjExplicitLod:     {"ImageSparseSampleProjExplicitLod", true, true, 2, false, true},
	OpImageSparseSampleProjDrefImplicitLod: {"ImageSparseSampleProjDrefImplicitLod", true, true, 3, false, true},
	OpImageSparseSampleProjDrefExplicitLod: {"ImageSparseSampleProjDrefExplicitLod", true, true, 3, false, true},
	OpImageSparseFetch:                     {"ImageSparseFetch", true, true, 2, false, true},
	OpImageSparseGather:                    {"ImageSparseGather", true, true, 3, false, true},
	OpImageSparseDrefGather:                {"ImageSparseDrefGather", true, true, 3, false, true},
	OpImageSparseTexelsResident:            {"ImageSparseTexelsResident", true, true, 1, false, false},
	OpImageSparseRead:                      {"ImageSparseRead", true, true, 2, false, true},

	// Later core additions
	OpNoLine:                             {"NoLine", false, false, 0, false, false},
	OpSizeOf:                             {"SizeOf", true, true, 1, false, false},
	OpTypePipeStorage:                    {"TypePipeStorage", true, false, 0, false, true},
	OpConstantPipeStorage:                {"ConstantPipeStorage", true, true, 0, false, true},
	OpCreatePipeFromPipeStorage:          {"CreatePipeFromPipeStorage", true, true, 1, false, false},
	OpGetKernelLocalSizeForSubgroupCount: {"GetKernelLocalSizeForSubgroupCount", true, true, 0, false, true},
	OpGetKernelMaxNumSubgroups:           {"GetKernelMaxNumSubgroups", true, true, 0, false, true},
	OpTypeNamedBarrier:                   {"TypeNamedBarrier", true, false, 0, false, true},
	OpModuleProcessed:                    {"ModuleProcessed", false, false, 0, false, false},
}
