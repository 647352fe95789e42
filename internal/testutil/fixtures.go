package testutil

// ScenarioModel is a small but complete model used across packages. It holds
// two partitions, a caller chain (R0 -> R1), an exclusive area with an
// optimization reason and one without, provide/require port connections of
// every kind, and mappings to a task, an interrupt, an unmapped task and a
// task name that exists nowhere.
const ScenarioModel = `<?xml version="1.0" encoding="UTF-8"?>
<RteModel>
  <Partitions>
    <Partition name="P1" coreId="0">
      <Tasks>
        <Task name="T1" priority="10"/>
        <Task name="T2" priority="5"/>
      </Tasks>
      <Interrupts>
        <Interrupt name="ISR_Can" category="2"/>
      </Interrupts>
      <SwComponents>
        <SwComponent name="C1">
          <Runnables>
            <Runnable id="R1" name="C1_Main">
              <DirectCallers><Caller ref="R0"/></DirectCallers>
            </Runnable>
            <Runnable id="R0" name="C1_Init"/>
            <Runnable id="R2" name="C1_Cyclic"/>
          </Runnables>
          <ExclusiveAreas>
            <ExclusiveArea id="EA1" name="Data" optimizationReason="single core">
              <RunsInside ref="R1"/>
              <CanEnter ref="BE1"/>
            </ExclusiveArea>
          </ExclusiveAreas>
          <ProvidePorts>
            <ProvidePort id="PP1" name="PP1">
              <ConnectedVariableInstance ref="V9"/>
            </ProvidePort>
            <ProvidePort id="PP2" name="PP2">
              <ConnectedOperationInstance ref="O1"/>
              <ConnectedModeInstance ref="M1"/>
            </ProvidePort>
          </ProvidePorts>
        </SwComponent>
        <SwComponent name="C2">
          <Runnables>
            <Runnable id="R3" name="C2_Step"/>
          </Runnables>
          <RequirePorts>
            <RequirePort id="RP1" name="RP1">
              <VariableInstance id="V9"/>
            </RequirePort>
            <RequirePort id="RP2">
              <OperationInstance id="O1"/>
            </RequirePort>
          </RequirePorts>
        </SwComponent>
      </SwComponents>
      <BswModules>
        <BswModule name="CanIf">
          <Implementation><InternalBehavior><Entities>
            <Entity id="BE1" name="CanIf_MainFunction"/>
          </Entities></InternalBehavior></Implementation>
          <ExclusiveAreas>
            <ExclusiveArea id="EA2" name="Buffer">
              <RunsInside ref="BE1"/>
            </ExclusiveArea>
          </ExclusiveAreas>
          <ProvidePorts>
            <ProvidePort id="PP3" name="CanIf_Trigger">
              <ConnectedTriggerInstance ref="TR1"/>
            </ProvidePort>
          </ProvidePorts>
          <RequirePorts>
            <RequirePort id="RP3" name="CanIf_Mode">
              <ModeInstance id="M1"/>
            </RequirePort>
          </RequirePorts>
        </BswModule>
      </BswModules>
    </Partition>
    <Partition name="P2" coreId="1">
      <SwComponents>
        <SwComponent name="C3">
          <Runnables>
            <Runnable id="R5" name="C3_Rx"/>
          </Runnables>
          <RequirePorts>
            <RequirePort id="RP4" name="RP4">
              <TriggerInstance id="TR1"/>
            </RequirePort>
          </RequirePorts>
        </SwComponent>
      </SwComponents>
    </Partition>
  </Partitions>
  <Events>
    <Event id="E1" name="E1" type="TimingEvent">
      <TaskEventMapping eventName="E1" executableRef="R1" mappedToTask="true" taskName="T1" position="0"/>
    </Event>
    <Event id="E2" name="E2" type="TimingEvent">
      <TaskEventMapping eventName="E2" executableRef="BE1" mappedToTask="true" taskName="T1" position="1"/>
    </Event>
    <Event id="E3" name="E3" type="InitEvent">
      <TaskEventMapping eventName="E3" executableRef="R0" mappedToTask="true" taskName="T2" position="0"/>
    </Event>
    <Event id="E4" name="E4" type="DataReceivedEvent">
      <TaskEventMapping eventName="E4" executableRef="R5" mappedToTask="true" taskName="ISR_Can" position="0"/>
    </Event>
    <Event id="E5" name="E5" type="TimingEvent">
      <TaskEventMapping eventName="E5" executableRef="R2" mappedToTask="false" taskName="T1"/>
    </Event>
    <Event id="E6" name="E6" type="TimingEvent">
      <TaskEventMapping eventName="E6" executableRef="R3" mappedToTask="true" taskName="T_Missing"/>
    </Event>
  </Events>
</RteModel>`

// BrokenReferenceModel maps an event to an executable that exists nowhere.
const BrokenReferenceModel = `<RteModel>
  <Partitions>
    <Partition name="P1" coreId="0">
      <Tasks><Task name="T1"/></Tasks>
    </Partition>
  </Partitions>
  <Events>
    <Event name="E1">
      <TaskEventMapping eventName="E1" executableRef="R404" mappedToTask="true" taskName="T1"/>
    </Event>
  </Events>
</RteModel>`

// CallerCycleModel holds the caller cycle R1 -> R2 -> R1 inside an exclusive area.
const CallerCycleModel = `<RteModel>
  <Partitions>
    <Partition name="P1" coreId="0">
      <SwComponents>
        <SwComponent name="C1">
          <Runnables>
            <Runnable id="R1" name="A"><DirectCallers><Caller ref="R2"/></DirectCallers></Runnable>
            <Runnable id="R2" name="B"><DirectCallers><Caller ref="R1"/></DirectCallers></Runnable>
          </Runnables>
          <ExclusiveAreas>
            <ExclusiveArea id="EA1" name="Loop"><RunsInside ref="R1"/></ExclusiveArea>
          </ExclusiveAreas>
        </SwComponent>
      </SwComponents>
    </Partition>
  </Partitions>
</RteModel>`
